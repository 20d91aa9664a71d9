package common

import (
	"github.com/logrusorgru/aurora"
)

func AlertColor(str string) string {
	return aurora.Red(str).String()
}

func InfoColor(str string) string {
	return aurora.Green(str).String()
}

func WarningColor(str string) string {
	return aurora.Yellow(str).String()
}

func HashColor(str string) string {
	return aurora.Cyan(str).String()
}
