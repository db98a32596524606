/*
Copyright © 2024 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/mikesmitty/smooth-boy/cmd"

func main() {
	cmd.Execute()
}
