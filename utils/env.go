package utils

import (
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// LoadEnv loads .env from the working directory when present. Variables already set win.
func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		logrus.Debug("no .env file loaded")
		return
	}
	logrus.Debug("loaded .env")
}

// GetEnv returns the value of key, or fallback when it is unset or empty.
func GetEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Info prints an operator-facing status line; Success, Warn and Fail mirror it.
func Info(format string, a ...any) {
	color.New(color.FgCyan).Printf("ℹ️  "+format+"\n", a...)
}

func Success(format string, a ...any) {
	color.New(color.FgGreen).Printf("✅ "+format+"\n", a...)
}

func Warn(format string, a ...any) {
	color.New(color.FgYellow).Printf("⚠️  "+format+"\n", a...)
}

func Fail(format string, a ...any) {
	color.New(color.FgRed).Fprintf(color.Error, "❌ "+format+"\n", a...)
}
