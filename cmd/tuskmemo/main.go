package main

import "github.com/sandevgo/tuskmemo/internal/service/ui"

func main() {
	ui.CustomizeHelp(rootCmd)
	Execute()
}
