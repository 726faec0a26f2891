package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWithoutFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := writeTempJSON(t, `{"seed": 42, "cells": 500}`)

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, 500, cfg.Cells)
	assert.Equal(t, Defaults().TemperatureEquator, cfg.TemperatureEquator)
}

func TestLoadMissingFileErrors(t *testing.T) {
	_, err := Load(viper.New(), "/no/such/config.json")
	assert.Error(t, err)
}
