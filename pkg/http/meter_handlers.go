package http

import (
	"net/http"

	z "github.com/Oudwins/zog"
	"github.com/gin-gonic/gin"
	"liyu1981.xyz/logify-service/pkg/common"
	"liyu1981.xyz/logify-service/pkg/logify"
)

// ReadingRequest binds through a pointer so 0 stays a valid reading and a missing value does not.
type ReadingRequest struct {
	Value *float64 `json:"value"`
}

func (rs *RestfulServer) parseReading(c *gin.Context) (float64, bool) {
	var req ReadingRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Value == nil {
		rs.fail(c, logify.ErrInvalidReading)
		return 0, false
	}
	return *req.Value, true
}

func (rs *RestfulServer) ListMeterReadings(c *gin.Context) {
	meterType, err := logify.ParseMeterType(c.Param("type"))
	if err != nil {
		rs.fail(c, err)
		return
	}

	readings, err := rs.Logify.Meter.ListReadings(c.Request.Context(), meterType)
	if err != nil {
		rs.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, common.Mapper(readings, toMeterReading))
}

func (rs *RestfulServer) PostMeterReading(c *gin.Context) {
	meterType, err := logify.ParseMeterType(c.Param("type"))
	if err != nil {
		rs.fail(c, err)
		return
	}

	if !rs.CheckLimiter(logify.MeterScopeKey(string(meterType))) {
		rs.fail(c, logify.ErrRateLimited)
		return
	}

	value, ok := rs.parseReading(c)
	if !ok {
		return
	}

	reading, err := rs.Logify.Meter.AddReading(c.Request.Context(), meterType, value)
	if err != nil {
		rs.fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, toMeterReading(*reading))
}

func (rs *RestfulServer) ListElectricityMeters(c *gin.Context) {
	meters, err := rs.Logify.Electricity.ListMeters(c.Request.Context())
	if err != nil {
		rs.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, common.Mapper(meters, toElectricityMeter))
}

type CreateMeterRequest struct {
	MeterNumber string `json:"meterNumber"`
	Location    string `json:"location"`
}

var createMeterRequestSchema = z.Struct(z.Shape{
	"MeterNumber": z.String().Required(),
	"Location":    z.String(),
})

func (rs *RestfulServer) CreateElectricityMeter(c *gin.Context) {
	var req CreateMeterRequest
	if !rs.parseBody(c, createMeterRequestSchema, &req, logify.ErrMissingFields) {
		return
	}

	meter, err := rs.Logify.Electricity.CreateMeter(c.Request.Context(), req.MeterNumber, req.Location)
	if err != nil {
		rs.fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, toElectricityMeter(*meter))
}

func (rs *RestfulServer) ListElectricityReadings(c *gin.Context) {
	readings, err := rs.Logify.Electricity.ListReadings(c.Request.Context(), c.Param("id"))
	if err != nil {
		rs.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, common.Mapper(readings, toElectricityReading))
}

func (rs *RestfulServer) PostElectricityReading(c *gin.Context) {
	meterID := c.Param("id")

	if !rs.CheckLimiter(logify.ElectricityScopeKey(meterID)) {
		rs.fail(c, logify.ErrRateLimited)
		return
	}

	value, ok := rs.parseReading(c)
	if !ok {
		return
	}

	reading, err := rs.Logify.Electricity.AddReading(c.Request.Context(), meterID, value)
	if err != nil {
		rs.fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, toElectricityReading(*reading))
}
