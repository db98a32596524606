package smoothboy

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"os/signal"
	"syscall"

	tsl2591 "github.com/JenswBE/golang-tsl2591"
	"github.com/mikesmitty/max31865"
	"github.com/mikesmitty/sht4x"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"

	"github.com/mikesmitty/smooth-boy/pkg/env"
	"github.com/mikesmitty/smooth-boy/pkg/hygro"
	"github.com/mikesmitty/smooth-boy/pkg/lux"
	"github.com/mikesmitty/smooth-boy/pkg/mqtt"
	"github.com/mikesmitty/smooth-boy/pkg/router"
	"github.com/mikesmitty/smooth-boy/pkg/rtd"
	"github.com/mikesmitty/smooth-boy/pkg/smooth"
	"github.com/mikesmitty/smooth-boy/pkg/stats"
	"github.com/mikesmitty/smooth-boy/pkg/watchdog"
	"github.com/mikesmitty/smooth-boy/pkg/weights"
	"github.com/mikesmitty/smooth-boy/pkg/wma"
)

func Root() func(cmd *cobra.Command, args []string) {
	return func(cmd *cobra.Command, args []string) {
		slogOpts := slog.HandlerOptions{
			Level: slog.LevelInfo,
		}
		if viper.GetBool("debug") {
			slogOpts.Level = slog.LevelDebug
		}
		log := slog.New(slog.NewTextHandler(os.Stderr, &slogOpts))
		slog.SetDefault(log)

		spiBus := viper.GetString("spibus")
		i2cBus := viper.GetString("i2cbus")
		sampleInterval := viper.GetDuration("sample-interval")
		refInterval := viper.GetDuration("ref-interval")
		noiseWindow := viper.GetInt("noise-window")

		weight, err := weightTable()
		errChk(err)
		slog.Info("filter configured", "size", len(weight), "profile", viper.GetString("weight-profile"))

		hostState, err := host.Init()
		errChk(err)
		for i := range hostState.Loaded {
			slog.Debug("loaded", "module", hostState.Loaded[i])
		}
		for i := range hostState.Failed {
			slog.Error("failed", "module", hostState.Failed[i])
		}
		for i := range hostState.Skipped {
			slog.Debug("skipped", "module", hostState.Skipped[i])
		}

		ctx, cancelFunc := context.WithCancel(context.Background())
		g, ctx := errgroup.WithContext(ctx)
		g.SetLimit(-1)

		// MAX31865 RTD
		sb, err := spireg.Open(spiBus)
		errChk(err)

		tempDev, err := max31865.New(sb, nil)
		errChk(err)

		tempCh, tempFn := rtd.TemperatureChannel(ctx, tempDev, sampleInterval)
		slog.Debug("starting rtd sensor")
		g.Go(tempFn)
		tempFan := router.NewFan[float64]("temp", tempCh)
		g.Go(tempFan.Run)

		tempSmoothCh, tempSmoothFn, err := smooth.NewSmooth("temp", tempFan.Subscribe("smooth"), weight)
		errChk(err)
		g.Go(tempSmoothFn)
		tempSmoothFan := router.NewFan[float64]("temp-smooth", tempSmoothCh)
		g.Go(tempSmoothFan.Run)

		tempNoiseCh, tempNoiseFn := stats.NewNoise("temp", tempFan.Subscribe("noise"), tempSmoothFan.Subscribe("noise"), noiseWindow)
		g.Go(tempNoiseFn)

		// TSL2591
		opts := &tsl2591.Opts{
			Bus:    i2cBus,
			Gain:   tsl2591.GainLow,
			Timing: tsl2591.IntegrationTime100MS,
		}
		tslDev, err := tsl2591.NewTSL2591(opts)
		errChk(err)
		defer func() {
			if disableErr := tslDev.Disable(); disableErr != nil {
				slog.Error("tsl2591 disable failed", "error", disableErr)
			}
		}()

		lightCh, lightFn := lux.LightChannel(ctx, tslDev, sampleInterval)
		slog.Debug("starting light sensor")
		g.Go(lightFn)
		lightFan := router.NewFan[float64]("light", lightCh)
		g.Go(lightFan.Run)

		lightSmoothCh, lightSmoothFn, err := smooth.NewSmooth("light", lightFan.Subscribe("smooth"), weight)
		errChk(err)
		g.Go(lightSmoothFn)
		lightSmoothFan := router.NewFan[float64]("light-smooth", lightSmoothCh)
		g.Go(lightSmoothFan.Run)

		lightNoiseCh, lightNoiseFn := stats.NewNoise("light", lightFan.Subscribe("noise"), lightSmoothFan.Subscribe("noise"), noiseWindow)
		g.Go(lightNoiseFn)

		// SHT4x
		ib, err := i2creg.Open(i2cBus)
		errChk(err)
		defer ib.Close()

		refDev, err := sht4x.New(ib, nil)
		errChk(err)

		refCh, refFn := hygro.EnvChannel(ctx, refDev, refInterval)
		slog.Debug("starting sht4x")
		g.Go(refFn)
		refFan := router.NewFan[env.Env]("ref", refCh)
		g.Go(refFan.Run)

		dewptCh, dewptFn, err := dewpointStage(refFan.Subscribe("dewpoint"), weight)
		errChk(err)
		g.Go(dewptFn)

		// MQTT
		mqttUrl, err := url.Parse(viper.GetString("mqtt-broker"))
		errChk(err)
		mqttSampleInterval := viper.GetInt("mqtt-sample-interval")
		mc := mqtt.NewClient(mqttUrl, mqttSampleInterval)
		errChk(mc.Connect())
		g.Go(mc.GetPublisher(
			tempFan.Subscribe("mqtt"), tempSmoothFan.Subscribe("mqtt"), tempNoiseCh,
			lightFan.Subscribe("mqtt"), lightSmoothFan.Subscribe("mqtt"), lightNoiseCh,
			dewptCh,
			refFan.Subscribe("mqtt"),
		))
		errChk(mc.HomeAssistant())
		// Publish/handle the raw-passthrough switch
		g.Go(mc.SwitchFn("raw-publish", mc.EnableRaw, mc.DisableRaw, mc.RawEnabled))

		// Watchdog
		watchdogTimeout := viper.GetDuration("watchdog-timeout")
		g.Go(watchdog.NewWatchdog(watchdogTimeout, func() error {
			cancelFunc()
			return fmt.Errorf("watchdog: rtd sensor stalled")
		}, tempFan.Subscribe("watchdog")))

		// Signal handling
		chanSignal := make(chan os.Signal, 1)
		signal.Notify(chanSignal, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGINT)

		g.Go(func() error {
			defer cancelFunc()
			select {
			case <-ctx.Done():
			case <-chanSignal:
			}
			slog.Info("shutting down...")
			return nil
		})

		slog.Debug("waiting for goroutines to finish")
		err = g.Wait()
		errChk(err)
	}
}

// dewpointStage smooths the reference temperature and humidity with
// their own filters and recomputes the dewpoint from the smoothed
// components.
func dewpointStage(input <-chan env.Env, weight []float64) (<-chan float64, func() error, error) {
	tempFilter, err := wma.New(make([]float64, len(weight)), weight)
	if err != nil {
		return nil, nil, err
	}
	rhFilter, err := wma.New(make([]float64, len(weight)), weight)
	if err != nil {
		return nil, nil, err
	}
	c := make(chan float64, 1)
	return c, func() error {
		defer close(c)
		for e := range input {
			temp := tempFilter.Add(e.Temperature)
			rh := rhFilter.Add(e.Humidity)
			if !tempFilter.Primed() {
				continue
			}
			c <- env.DewpointC(temp, rh)
		}
		return nil
	}, nil
}

func weightTable() ([]float64, error) {
	size := viper.GetInt("window-size")
	switch profile := viper.GetString("weight-profile"); profile {
	case "uniform":
		return weights.Uniform(size)
	case "linear":
		return weights.Linear(size)
	case "exponential":
		return weights.Exponential(size, viper.GetFloat64("exp-base"))
	case "custom":
		return weights.Parse(viper.GetString("weights"))
	default:
		return nil, fmt.Errorf("unknown weight profile %q", profile)
	}
}

func errChk(err error) {
	if err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}
