/*
Copyright © 2024 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/mikesmitty/smooth-boy/pkg/smoothboy"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "smooth-boy",
	Short: "Sensor telemetry smoothing daemon",
	Long: `smooth-boy polls a set of environmental sensors, runs each signal
through a weighted moving-average filter, and publishes the raw and
smoothed values (plus a residual noise estimate) over MQTT with Home
Assistant discovery.`,
	Run: smoothboy.Root(),
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.smooth-boy.yaml)")
	rootCmd.PersistentFlags().String("i2cbus", "", "name of the i2c bus")
	rootCmd.PersistentFlags().String("spibus", "", "name of the spi bus")
	rootCmd.PersistentFlags().String("mqtt-broker", "", "mqtt broker url")
	rootCmd.PersistentFlags().Int("mqtt-sample-interval", 10, "publish every Nth reading")
	rootCmd.PersistentFlags().Duration("sample-interval", 100*time.Millisecond, "sensor polling interval")
	rootCmd.PersistentFlags().Duration("ref-interval", 6*time.Second, "reference temperature/humidity polling interval")
	rootCmd.PersistentFlags().Duration("watchdog-timeout", 10*time.Second, "shutdown timeout without sensor readings")
	rootCmd.PersistentFlags().Int("window-size", 8, "moving-average window size in samples")
	rootCmd.PersistentFlags().String("weight-profile", "uniform", "weight table profile (uniform, linear, exponential, custom)")
	rootCmd.PersistentFlags().String("weights", "", "comma-separated weight table, oldest first (weight-profile=custom)")
	rootCmd.PersistentFlags().Float64("exp-base", 2.0, "per-slot ratio for the exponential weight profile")
	rootCmd.PersistentFlags().Int("noise-window", 64, "residual window size for the noise estimate")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	viper.BindPFlags(rootCmd.PersistentFlags())
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".smooth-boy" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".smooth-boy")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
