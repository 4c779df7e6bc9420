// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ezrec/vproc/config"
	"github.com/ezrec/vproc/cpu"
	"github.com/ezrec/vproc/debugger"
	"github.com/ezrec/vproc/emulator"
)

// loadConfig reads the configuration file, if any, under the command flags.
func loadConfig(cmd *cobra.Command, path string) (conf *config.Config, err error) {
	if len(path) == 0 {
		conf = config.Default()
	} else {
		conf, err = config.Load(path)
		if err != nil {
			return
		}
	}

	flags := cmd.Flags()
	if flags.Changed("verbose") {
		conf.Verbose, _ = flags.GetBool("verbose")
	}
	if flags.Lookup("debug") != nil && flags.Changed("debug") {
		conf.Debug, _ = flags.GetBool("debug")
	}
	if flags.Lookup("count") != nil && flags.Changed("count") {
		conf.PrintExecuted, _ = flags.GetBool("count")
	}
	if flags.Lookup("stack-size") != nil && flags.Changed("stack-size") {
		conf.StackSize, _ = flags.GetInt("stack-size")
	}
	if flags.Lookup("history") != nil && flags.Changed("history") {
		conf.HistoryFile, _ = flags.GetString("history")
	}
	if flags.Lookup("define") != nil {
		defines, _ := flags.GetStringArray("define")
		for _, define := range defines {
			name, value, ok := strings.Cut(define, "=")
			if !ok {
				value = "1"
			}
			if conf.Predefine == nil {
				conf.Predefine = map[string]string{}
			}
			conf.Predefine[name] = value
		}
	}

	err = conf.Validate()
	return
}

// assemble reads and assembles a program source file for the emulator.
func assemble(path string, emu *emulator.Emulator, conf *config.Config) (prog *cpu.Program, err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	asm := &cpu.Assembler{Verbose: conf.Verbose}
	emu.Predefine(asm)
	for name, value := range conf.Predefine {
		asm.Predefine(name, value)
	}

	prog, err = asm.Parse(inf)
	if err != nil {
		err = fmt.Errorf("%v: %w", path, err)
	}
	return
}

func main() {
	var config_path string

	var rootCmd = &cobra.Command{
		Use:           "vproc",
		Short:         "Virtual processor emulator",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().StringVar(&config_path, "config", "", "YAML configuration file")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose mode")

	var runCmd = &cobra.Command{
		Use:   "run FILE",
		Short: "Assemble and run a program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			conf, err := loadConfig(cmd, config_path)
			if err != nil {
				return
			}

			emu := emulator.NewEmulator(conf.StackSize)
			prog, err := assemble(args[0], emu, conf)
			if err != nil {
				return
			}

			emu.Program = prog
			emu.Cpu.Output = os.Stdout
			err = conf.Apply(emu)
			if err != nil {
				return
			}
			emu.Reset()

			if conf.Debug {
				dbg := debugger.NewDebugger(emu)
				dbg.Verbose = conf.Verbose
				dbg.HistoryFile = conf.HistoryFile
				err = dbg.Run()
			} else {
				err = emu.Run()
			}
			if err != nil {
				err = fmt.Errorf("%v: %w", args[0], err)
			}
			return
		},
	}
	runCmd.Flags().BoolP("debug", "d", false, "Step through the program interactively")
	runCmd.Flags().BoolP("count", "c", false, "Print the number of instructions executed")
	runCmd.Flags().Int("stack-size", cpu.STACK_SIZE, "Stack size, in bytes")
	runCmd.Flags().String("history", "", "Debugger history file")
	runCmd.Flags().StringArrayP("define", "D", nil, "Predefine an equate, as NAME=VALUE")

	var checkCmd = &cobra.Command{
		Use:   "check FILE",
		Short: "Assemble and decode a program without running it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			conf, err := loadConfig(cmd, config_path)
			if err != nil {
				return
			}

			emu := emulator.NewEmulator(conf.StackSize)
			prog, err := assemble(args[0], emu, conf)
			if err != nil {
				return
			}

			err = prog.Validate()
			if err != nil {
				err = fmt.Errorf("%v: %w", args[0], err)
				return
			}

			tree, _ := cmd.Flags().GetBool("tree")
			if tree {
				fmt.Print(prog.Listing(args[0]).String())
			}

			fmt.Printf("%v: %d instructions\n", args[0], len(prog.Lines))
			return
		},
	}
	checkCmd.Flags().StringArrayP("define", "D", nil, "Predefine an equate, as NAME=VALUE")
	checkCmd.Flags().BoolP("tree", "t", false, "Print the program listing by label")

	var definesCmd = &cobra.Command{
		Use:   "defines",
		Short: "List the predefined equates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			conf, err := loadConfig(cmd, config_path)
			if err != nil {
				return
			}

			emu := emulator.NewEmulator(conf.StackSize)
			for name, value := range emu.Defines() {
				fmt.Printf("%v=%v\n", name, value)
			}
			return
		},
	}

	var mnemonicsCmd = &cobra.Command{
		Use:   "mnemonics",
		Short: "List the instruction mnemonics",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, mnemonic := range cpu.Mnemonics() {
				fmt.Println(mnemonic)
			}
		},
	}

	rootCmd.AddCommand(runCmd, checkCmd, definesCmd, mnemonicsCmd)

	err := rootCmd.Execute()
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}
}
