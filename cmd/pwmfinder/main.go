// cmd/pwmfinder/main.go
package main

import (
	"pwmfinder/internal/app"
	"pwmfinder/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
