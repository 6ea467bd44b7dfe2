// config.go - Konfigurationsfunktionen fuer tensorkit
//
// Dieses Modul enthaelt:
// - SkipDTypeChecks: Deaktiviert strikte DType-Pruefungen (TENSORKIT_SKIP_DTYPE_CHECKS)
// - NativeMode: Nimmt Host-Array-Kompatibilitaet fuer alle Typen an (TENSORKIT_NATIVE_MODE)
// - LogLevel: Gibt Log-Level zurueck (TENSORKIT_DEBUG)
//
// Weitere Konfigurationen sind ausgelagert:
// - config_utils.go: Utility-Funktionen und AsMap/Values
package envconfig

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

var (
	// SkipDTypeChecks ersetzt strikte Mismatch-Fehler durch Promotion
	SkipDTypeChecks = Bool("TENSORKIT_SKIP_DTYPE_CHECKS")

	// NativeMode behandelt jeden Deskriptor als Host-Array-kompatibel
	NativeMode = Bool("TENSORKIT_NATIVE_MODE")
)

// Var gibt eine Environment-Variable zurueck
// Entfernt fuehrende/trailing Quotes und Leerzeichen
func Var(key string) string {
	return strings.Trim(strings.TrimSpace(os.Getenv(key)), "\"'")
}

// LogLevel gibt das Log-Level zurueck
// Konfigurierbar via TENSORKIT_DEBUG
// Werte: 0/false = INFO (Default), 1/true = DEBUG, 2 = TRACE
func LogLevel() slog.Level {
	level := slog.LevelInfo
	if s := Var("TENSORKIT_DEBUG"); s != "" {
		if b, _ := strconv.ParseBool(s); b {
			level = slog.LevelDebug
		} else if i, _ := strconv.ParseInt(s, 10, 64); i != 0 {
			level = slog.Level(i * -4)
		}
	}

	return level
}
