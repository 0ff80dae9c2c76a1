// cmd/radmarkers/main.go
package main

import (
	"radmarkers/internal/app"
	"radmarkers/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
