package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/structpb"
	logifyGrpc "liyu1981.xyz/logify-service/pkg/grpc"
)

var maxMeters int = 1000
var httpHostPort string = "127.0.0.1:1080"
var grpcHostPort string = "127.0.0.1:10801"

var grpcClient *logifyGrpc.MeterServiceClient

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
var rndMu sync.Mutex

func main() {
	resp, err := http.Get(fmt.Sprintf("http://%s/healthz", httpHostPort))
	if err != nil {
		log.Fatal("Failed to connect to HTTP server:", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatal("HTTP server not available")
	}

	fmt.Printf("http server verified\n")

	conn, err := grpc.NewClient(grpcHostPort, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatal("Failed to connect to gRPC server:", err)
	}
	defer conn.Close()
	grpcClient = logifyGrpc.NewMeterServiceClient(conn)

	fmt.Printf("gRPC server verified and connected\n")

	var startTime time.Time
	var usedTime time.Duration

	meterIDs := make([]string, maxMeters)
	startTime = time.Now()
	wg := sync.WaitGroup{}
	for i := range maxMeters {
		wg.Add(1)
		go func() {
			defer wg.Done()
			meterIDs[i] = createMeter()
			fmt.Printf("\rcreated meter %v", i)
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\rcreated %v electricity meters: used time=%v seconds, throughput=%v action/second\n",
		maxMeters, usedTime.Seconds(), float64(maxMeters)/usedTime.Seconds(),
	)

	startTime = time.Now()
	wg = sync.WaitGroup{}
	for i := range maxMeters {
		wg.Add(1)
		go func() {
			defer wg.Done()
			doAction(meterIDs[i])
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\n\rdid actions for %v meters: used time=%v seconds, throughput=%v action/second\n",
		maxMeters, usedTime.Seconds(), float64(maxMeters*2)/usedTime.Seconds(),
	)
}

func flipCoin() bool {
	rndMu.Lock()
	defer rndMu.Unlock()
	return rnd.Int31n(100000)%2 == 0
}

func rndFloat64(min, max float64, decimal int) float64 {
	rndMu.Lock()
	val := min + rnd.Float64()*(max-min)
	rndMu.Unlock()
	multiplier := float64(math.Pow10(decimal))
	return float64(math.Round(float64(val)*float64(multiplier))) / multiplier
}

func createMeter() string {
	payload := map[string]string{
		"meterNumber": "BENCH-" + uuid.NewString()[:12],
		"location":    "benchmark",
	}
	jsonData, _ := json.Marshal(payload)
	resp, err := http.Post(fmt.Sprintf("http://%s/api/meters/electricity", httpHostPort), "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()

	var meter struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&meter); err != nil || meter.ID == "" {
		panic(fmt.Sprintf("err: %v, status: %v", err, resp.StatusCode))
	}
	return meter.ID
}

func doAction(meterID string) {
	actions := []func(){
		genPostReadingAction(meterID),
		genListReadingsAction(meterID),
	}
	actionNames := []string{
		"PostReading",
		"ListReadings",
	}
	for index, action := range actions {
		action()
		fmt.Printf("\rexecuted action %v for meter %v", actionNames[index], meterID)
		time.Sleep(time.Duration(100+rndFloat64(0, 1000, 0)) * time.Millisecond)
	}
}

func genPostReadingAction(meterID string) func() {
	return func() {
		value := rndFloat64(0.0, 10000.0, 2)

		if flipCoin() {
			jsonData, _ := json.Marshal(map[string]float64{"value": value})
			resp, err := http.Post(fmt.Sprintf("http://%s/api/meters/electricity/%s", httpHostPort, meterID), "application/json", bytes.NewBuffer(jsonData))
			if err != nil {
				fmt.Printf("\nerror: %v\n", err)
				return
			}
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusCreated {
				fmt.Printf("\nresponse status code != 201: %v\n", resp.StatusCode)
			}
		} else {
			req, _ := structpb.NewStruct(map[string]any{"meterId": meterID, "value": value})
			if _, err := grpcClient.AddReading(context.Background(), req); err != nil {
				fmt.Printf("\nerror: %v\n", err)
			}
		}
	}
}

func genListReadingsAction(meterID string) func() {
	return func() {
		if flipCoin() {
			resp, err := http.Get(fmt.Sprintf("http://%s/api/meters/electricity/%s", httpHostPort, meterID))
			if err != nil {
				fmt.Printf("\nerror: %v\n", err)
				return
			}
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				fmt.Printf("\nresponse status code != 200: %v\n", resp.StatusCode)
			}
		} else {
			req, _ := structpb.NewStruct(map[string]any{"meterId": meterID})
			if _, err := grpcClient.ListReadings(context.Background(), req); err != nil {
				fmt.Printf("\nerror: %v\n", err)
			}
		}
	}
}
