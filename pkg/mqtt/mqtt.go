package mqtt

import (
	"crypto/md5"
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/mikesmitty/smooth-boy/pkg/env"
)

type Client struct {
	client      paho.Client
	clientID    string
	topicPrefix string
	qos         byte
	retained    bool
	sampleRate  int
	publishRaw  bool
	hassSensors map[string]HassSensor
	mu          sync.Mutex
}

func NewClient(broker *url.URL, sampleRate int) *Client {
	c := &Client{}

	var urls []*url.URL
	urls = append(urls, broker)

	hostname, _ := os.Hostname()
	hostname = strings.Split(hostname, ".")[0]
	clientID := hostname
	if clientID == "" {
		now := time.Now().UnixNano()
		sum := md5.New().Sum([]byte(strconv.FormatInt(now, 10)))
		clientID = string(sum)
	}

	c.qos = 1
	c.topicPrefix = "smooth-boy/" + hostname
	c.clientID = clientID
	c.publishRaw = true
	c.hassSensors = make(map[string]HassSensor)

	slog.Info("connecting to mqtt", "url", broker, "clientid", clientID)
	c.client = paho.NewClient(&paho.ClientOptions{
		Servers:        urls,
		ClientID:       clientID,
		ConnectRetry:   true,
		ConnectTimeout: 30 * time.Second,
	})

	c.sampleRate = sampleRate

	return c
}

func (c *Client) Connect() error {
	if token := c.client.Connect(); token.Wait() && token.Error() != nil {
		slog.Error("mqtt connection failed", "error", token.Error())
		return token.Error()
	}
	return nil
}

func (c *Client) Subscribe(topic string, handler paho.MessageHandler) error {
	if token := c.client.Subscribe(topic, c.qos, handler); token.Wait() && token.Error() != nil {
		slog.Error("mqtt subscription failed", "error", token.Error())
		return token.Error()
	}
	return nil
}

// EnableRaw and DisableRaw toggle publishing of unfiltered sensor
// values; smoothed values are always published.
func (c *Client) EnableRaw() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.publishRaw = true
}

func (c *Client) DisableRaw() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.publishRaw = false
}

func (c *Client) RawEnabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.publishRaw
}

// GetPublisher returns a runner that drains every pipeline channel and
// publishes each as a Home Assistant discovered sensor, decimated by
// the configured sample rate.
func (c *Client) GetPublisher(
	tempRaw, tempSmooth, tempNoise <-chan float64,
	lightRaw, lightSmooth, lightNoise <-chan float64,
	dewptChan <-chan float64,
	refChan <-chan env.Env,
) func() error {
	tempRawSensor := c.RegisterHassSensor(c.NewHassSensor("Temperature Raw", HassSensorTemperature))
	tempSmoothSensor := c.RegisterHassSensor(c.NewHassSensor("Temperature", HassSensorTemperature))
	tempNoiseSensor := c.RegisterHassSensor(c.NewHassSensor("Temperature Noise", HassSensorGeneric))
	lightRawSensor := c.RegisterHassSensor(c.NewHassSensor("Infrared Light Raw", HassSensorIlluminance))
	lightSmoothSensor := c.RegisterHassSensor(c.NewHassSensor("Infrared Light", HassSensorIlluminance))
	lightNoiseSensor := c.RegisterHassSensor(c.NewHassSensor("Infrared Light Noise", HassSensorGeneric))
	dewpointSensor := c.RegisterHassSensor(c.NewHassSensor("Dewpoint", HassSensorTemperature))
	refTemp := c.RegisterHassSensor(c.NewHassSensor("Reference Temperature", HassSensorTemperature))
	refHumidity := c.RegisterHassSensor(c.NewHassSensor("Reference Humidity", HassSensorHumidity))
	refDewpoint := c.RegisterHassSensor(c.NewHassSensor("Reference Dewpoint", HassSensorTemperature))

	tempRawSample := NewSample(c.sampleRate)
	tempSmoothSample := NewSample(c.sampleRate)
	tempNoiseSample := NewSample(c.sampleRate)
	lightRawSample := NewSample(c.sampleRate)
	lightSmoothSample := NewSample(c.sampleRate)
	lightNoiseSample := NewSample(c.sampleRate)
	dewpointSample := NewSample(c.sampleRate)
	refSample := NewSample(c.sampleRate)

	// Closed channels are nil-ed out so shutdown drains cleanly; the
	// runner returns once every input has closed.
	return func() error {
		open := 8
		closeInput := func(ch *<-chan float64) {
			*ch = nil
			open--
		}
		for open > 0 {
			select {
			case temp, ok := <-tempRaw:
				if !ok {
					closeInput(&tempRaw)
					continue
				}
				if !c.RawEnabled() || !tempRawSample.Ready() {
					continue
				}
				slog.Debug("mqtt publishing", "field", "temp-raw", "value", temp)
				c.HassPublishSensor(tempRawSensor, strconv.FormatFloat(temp, 'f', 5, 64))
			case temp, ok := <-tempSmooth:
				if !ok {
					closeInput(&tempSmooth)
					continue
				}
				if !tempSmoothSample.Ready() {
					continue
				}
				slog.Debug("mqtt publishing", "field", "temp", "value", temp)
				c.HassPublishSensor(tempSmoothSensor, strconv.FormatFloat(temp, 'f', 5, 64))
			case noise, ok := <-tempNoise:
				if !ok {
					closeInput(&tempNoise)
					continue
				}
				if !tempNoiseSample.Ready() {
					continue
				}
				c.HassPublishSensor(tempNoiseSensor, strconv.FormatFloat(noise, 'f', 5, 64))
			case light, ok := <-lightRaw:
				if !ok {
					closeInput(&lightRaw)
					continue
				}
				if !c.RawEnabled() || !lightRawSample.Ready() {
					continue
				}
				slog.Debug("mqtt publishing", "field", "light-raw", "value", light)
				c.HassPublishSensor(lightRawSensor, strconv.FormatFloat(light, 'f', 2, 64))
			case light, ok := <-lightSmooth:
				if !ok {
					closeInput(&lightSmooth)
					continue
				}
				if !lightSmoothSample.Ready() {
					continue
				}
				slog.Debug("mqtt publishing", "field", "light", "value", light)
				c.HassPublishSensor(lightSmoothSensor, strconv.FormatFloat(light, 'f', 2, 64))
			case noise, ok := <-lightNoise:
				if !ok {
					closeInput(&lightNoise)
					continue
				}
				if !lightNoiseSample.Ready() {
					continue
				}
				c.HassPublishSensor(lightNoiseSensor, strconv.FormatFloat(noise, 'f', 2, 64))
			case dewpt, ok := <-dewptChan:
				if !ok {
					closeInput(&dewptChan)
					continue
				}
				if !dewpointSample.Ready() {
					continue
				}
				slog.Debug("mqtt publishing", "field", "dewpoint", "value", dewpt)
				c.HassPublishSensor(dewpointSensor, strconv.FormatFloat(dewpt, 'f', 5, 64))
			case ref, ok := <-refChan:
				if !ok {
					refChan = nil
					open--
					continue
				}
				if !refSample.Ready() {
					continue
				}
				c.HassPublishSensor(refTemp, strconv.FormatFloat(ref.Temperature, 'f', 2, 64))
				c.HassPublishSensor(refHumidity, strconv.FormatFloat(ref.Humidity, 'f', 2, 64))
				c.HassPublishSensor(refDewpoint, strconv.FormatFloat(ref.Dewpoint, 'f', 2, 64))
			}
		}
		slog.Debug("mqtt publisher inputs drained, stopping")
		return nil
	}
}

func (p *Client) Publish(topic string, msg string) {
	t := p.client.Publish(topic, p.qos, p.retained, msg)
	go func() {
		_ = t.WaitTimeout(5 * time.Second)
		if t.Error() != nil {
			slog.Error("mqtt message publish failed", "error", t.Error())
		}
	}()
}
