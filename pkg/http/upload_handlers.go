package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"liyu1981.xyz/logify-service/pkg/logify"
)

const uploadFormField = "image"

func (rs *RestfulServer) Upload(c *gin.Context) {
	header, err := c.FormFile(uploadFormField)
	if err != nil {
		rs.fail(c, logify.ErrNoFile)
		return
	}

	if rs.Uploader == nil {
		rs.fail(c, fmt.Errorf("upload backend not configured"))
		return
	}

	file, err := header.Open()
	if err != nil {
		rs.fail(c, fmt.Errorf("failed to open upload: %w", err))
		return
	}
	defer file.Close()

	url, err := rs.Uploader.SaveImage(c.Request.Context(), header.Filename, file)
	if err != nil {
		rs.fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url})
}
