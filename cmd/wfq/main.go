// cmd/wfq/main.go
package main

import (
	"wfq/internal/app"
	"wfq/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
