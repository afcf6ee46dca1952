// Command step6502 loads a raw binary image into a flat 64 KiB address
// space, resets a cpu.Chip at a chosen entry point, and steps it a fixed
// number of times, printing a register trace after each step. It plays the
// same role as the reference C harness's load_memory/reset6502/step6502
// loop, as a worked example of the kind of host an embedder would write.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mattfield/go6502/cpu"
	"github.com/mattfield/go6502/disassemble"
	"github.com/mattfield/go6502/memory"
)

func main() {
	var pc uint16
	var steps int
	var trace bool
	var ifInterrupt bool

	root := &cobra.Command{
		Use:   "step6502 <rom.bin>",
		Short: "Step a MOS 6502 core through a raw binary image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], pc, steps, trace, ifInterrupt)
		},
	}
	root.Flags().Uint16Var(&pc, "pc", 0x0400, "entry address to reset into")
	root.Flags().IntVar(&steps, "steps", 10, "number of instructions to execute")
	root.Flags().BoolVar(&trace, "trace", false, "disassemble each instruction before executing it")
	root.Flags().BoolVar(&ifInterrupt, "set-i-on-reset", false, "set the I flag on reset, matching real hardware")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(path string, pc uint16, steps int, trace bool, ifInterrupt bool) error {
	image, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if len(image) > 1<<16 {
		return fmt.Errorf("%s is %d bytes, bigger than the 64 KiB address space", path, len(image))
	}

	bank, err := memory.New(1<<16, nil)
	if err != nil {
		return fmt.Errorf("allocating address space: %w", err)
	}
	for addr, b := range image {
		bank.Write(uint16(addr), b)
	}
	fmt.Printf("loaded %d bytes from %s\n", len(image), path)

	c := cpu.New(bank, cpu.Options{IFlagOnReset: ifInterrupt})
	c.Reset(pc)
	dumpRegisters(c)

	for i := 0; i < steps; i++ {
		if trace {
			text, _ := disassemble.Step(c.PC, bank)
			fmt.Println(text)
		}
		if err := c.Step(); err != nil {
			return fmt.Errorf("step %d at pc=0x%.4X: %w", i, c.PC, err)
		}
		dumpRegisters(c)
	}

	fmt.Println("stopped")
	return nil
}

func dumpRegisters(c *cpu.Chip) {
	fmt.Printf("pc=%.4X sp=%.2X a=%.2X x=%.2X y=%.2X status=%.2X\n",
		c.PC, c.S, c.A, c.X, c.Y, c.P)
}
