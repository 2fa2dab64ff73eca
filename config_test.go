package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseConfig_Defaults(t *testing.T) {
	c := parseConfig(strings.NewReader(""), "/home/test")
	if !c.Confirmations || !c.ShowPanel || c.SaveDirectory != "" {
		t.Errorf("unexpected defaults: %+v", c)
	}
	if c.Defaults != defaultElementDefaults() {
		t.Errorf("unexpected element defaults: %+v", c.Defaults)
	}
}

func TestParseConfig_Values(t *testing.T) {
	rc := `
# canalplan settings
saveDirectory = ~/schemes
confirmations=false
panel = false
cropType = cotton
parcelArea = 2.25
parcelWidth = 80
parcelHeight = 50
`
	c := parseConfig(strings.NewReader(rc), "/home/test")
	if c.SaveDirectory != filepath.Join("/home/test", "schemes") {
		t.Errorf("expected expanded save directory, got %q", c.SaveDirectory)
	}
	if c.Confirmations || c.ShowPanel {
		t.Error("expected confirmations and panel to be off")
	}
	want := ElementDefaults{ParcelWidth: 80, ParcelHeight: 50, ParcelArea: 2.25, CropType: "cotton"}
	if c.Defaults != want {
		t.Errorf("expected %+v, got %+v", want, c.Defaults)
	}
}

func TestParseConfig_IgnoresBadNumbers(t *testing.T) {
	rc := "parcelArea = -1\nparcelWidth = wide\nnot a setting\n"
	c := parseConfig(strings.NewReader(rc), "")
	if c.Defaults != defaultElementDefaults() {
		t.Errorf("expected defaults to survive bad values, got %+v", c.Defaults)
	}
}

func TestLoadConfigFrom_MissingFile(t *testing.T) {
	c := loadConfigFrom(filepath.Join(t.TempDir(), "nope"), "")
	if !c.Confirmations {
		t.Error("expected default config for a missing file")
	}
}

func TestLoadConfigFrom_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".canalplanrc")
	if err := os.WriteFile(path, []byte("confirm=false\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if c := loadConfigFrom(path, ""); c.Confirmations {
		t.Error("expected confirmations off")
	}
}

func TestGetSavePath(t *testing.T) {
	c := defaultConfig()
	if got := c.GetSavePath("a.json"); got != "a.json" {
		t.Errorf("expected bare filename, got %q", got)
	}

	dir := filepath.Join(t.TempDir(), "out")
	c.SaveDirectory = dir
	if got := c.GetSavePath("a.json"); got != filepath.Join(dir, "a.json") {
		t.Errorf("unexpected path %q", got)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("expected save directory to be created: %v", err)
	}
}
