// Command multiservo talks to a multiservo board over its USB serial port.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.bug.st/serial"

	"github.com/calvinmclean/multiservo"
)

var (
	portName string
	baudRate int
)

func main() {
	root := &cobra.Command{
		Use:   "multiservo",
		Short: "Control a multiservo board over a serial port",
		Long: `Sends line-protocol commands ("ch,pos;ch,pos;...") to a multiservo board ` +
			`and echoes the board's diagnostic output.`,
	}
	root.PersistentFlags().StringVarP(&portName, "port", "p", "/dev/ttyACM0", "serial port of the board")
	root.PersistentFlags().IntVarP(&baudRate, "baud", "b", 115200, "baud rate")

	root.AddCommand(createShellCmd(), createSetCmd(), createCenterCmd(), createPortsCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func openPort() (serial.Port, error) {
	return serial.Open(portName, &serial.Mode{BaudRate: baudRate})
}

func createShellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Stream stdin lines to the board and echo its diagnostics",
		RunE: func(_ *cobra.Command, _ []string) error {
			port, err := openPort()
			if err != nil {
				return err
			}
			defer port.Close()

			go io.Copy(os.Stdout, port)

			scanner := bufio.NewScanner(os.Stdin)
			for scanner.Scan() {
				if _, err := port.Write([]byte(scanner.Text() + "\n")); err != nil {
					return err
				}
			}
			return scanner.Err()
		},
	}
}

func createSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <ch,pos;ch,pos;...>",
		Short: "Send one command line and print the board's reply",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return send(args[0])
		},
	}
}

func createCenterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "center",
		Short: "Move every channel to 0 degrees",
		RunE: func(_ *cobra.Command, _ []string) error {
			pairs := make([]string, multiservo.NumChannels)
			for ch := range pairs {
				pairs[ch] = strconv.Itoa(ch) + ",0"
			}
			return send(strings.Join(pairs, ";"))
		},
	}
}

func createPortsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ports",
		Short: "List candidate serial ports",
		RunE: func(_ *cobra.Command, _ []string) error {
			ports, err := serial.GetPortsList()
			if err != nil {
				return err
			}
			for _, p := range ports {
				fmt.Println(p)
			}
			return nil
		},
	}
}

// send writes one command line and echoes replies until the board goes
// quiet.
func send(line string) error {
	port, err := openPort()
	if err != nil {
		return err
	}
	defer port.Close()

	if _, err := port.Write([]byte(line + "\n")); err != nil {
		return err
	}

	port.SetReadTimeout(500 * time.Millisecond)
	buf := make([]byte, 256)
	for {
		n, err := port.Read(buf)
		if err != nil {
			return err
		}
		if n == 0 {
			return nil
		}
		os.Stdout.Write(buf[:n])
	}
}
