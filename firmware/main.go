//go:build tinygo

package main

import (
	"machine"
	"time"

	"github.com/calvinmclean/multiservo"
	"github.com/calvinmclean/multiservo/commands"
	"github.com/calvinmclean/multiservo/firmware/device"
	"github.com/calvinmclean/multiservo/indicator"
	"github.com/calvinmclean/multiservo/loop"
	"github.com/calvinmclean/multiservo/reader"
)

func main() {
	// Give USB serial time to enumerate before the banner.
	time.Sleep(2 * time.Second)

	bank, err := device.NewServoBank()
	if err != nil {
		panic(err)
	}

	// Enabling the bank parks every servo at center.
	table := multiservo.NewChannelTable(bank)
	table.Center()

	ind := indicator.New(device.NewStrip(), device.NumLEDs)
	ind.Welcome()

	println("multiservo initialized with", multiservo.NumChannels, "servos")
	println("range:", multiservo.MinAngle, "to", multiservo.MaxAngle, "degrees")
	println("ready for commands (format: ch1,pos1;ch2,pos2;...)")

	runner := loop.New(
		reader.New(machine.Serial),
		commands.NewHandler(table, machine.Serial),
	)
	runner.Indicator = ind
	runner.Button = device.NewButton()
	runner.Run()
}
