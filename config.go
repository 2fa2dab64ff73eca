package main

import (
	"bufio"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type Config struct {
	SaveDirectory string
	Confirmations bool
	ShowPanel     bool
	Defaults      ElementDefaults
}

func defaultConfig() *Config {
	return &Config{
		SaveDirectory: "",
		Confirmations: true,
		ShowPanel:     true,
		Defaults:      defaultElementDefaults(),
	}
}

func loadConfig() *Config {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return defaultConfig()
	}
	return loadConfigFrom(filepath.Join(homeDir, ".canalplanrc"), homeDir)
}

func loadConfigFrom(path, homeDir string) *Config {
	file, err := os.Open(path)
	if err != nil {
		return defaultConfig()
	}
	defer file.Close()
	return parseConfig(file, homeDir)
}

func parseConfig(r io.Reader, homeDir string) *Config {
	config := defaultConfig()

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch strings.ToLower(key) {
		case "savedirectory", "save_directory", "savedir":
			if strings.HasPrefix(value, "~") && homeDir != "" {
				value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
			}
			if !filepath.IsAbs(value) {
				if absPath, err := filepath.Abs(value); err == nil {
					value = absPath
				}
			}
			config.SaveDirectory = value
		case "confirmations", "confirm":
			config.Confirmations = strings.ToLower(value) == "true"
		case "panel", "showpanel", "show_panel":
			config.ShowPanel = strings.ToLower(value) == "true"
		case "croptype", "crop_type", "crop":
			if value != "" {
				config.Defaults.CropType = value
			}
		case "parcelarea", "parcel_area":
			setPositive(&config.Defaults.ParcelArea, key, value)
		case "parcelwidth", "parcel_width":
			setPositive(&config.Defaults.ParcelWidth, key, value)
		case "parcelheight", "parcel_height":
			setPositive(&config.Defaults.ParcelHeight, key, value)
		}
	}
	if err := scanner.Err(); err != nil {
		log.Printf("config: read error: %v", err)
	}

	return config
}

func setPositive(dst *float64, key, value string) {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil || v <= 0 {
		log.Printf("config: ignoring %s=%q", key, value)
		return
	}
	*dst = v
}

func (c *Config) GetSavePath(filename string) string {
	if c.SaveDirectory == "" {
		return filename
	}
	if err := os.MkdirAll(c.SaveDirectory, 0755); err != nil {
		log.Printf("config: create save directory: %v", err)
	}
	return filepath.Join(c.SaveDirectory, filename)
}
