package main

/*
交错双端测序 reads 随机拆分到多个文件，每对 reads (8 行) 作为一个整体
*/

import (
	"log/slog"
	"math/rand"
	"os"
	"runtime/pprof"
	"strconv"
	"time"

	"github.com/liserjrqlxue/goUtil/osUtil"
	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/liserjrqlxue/MitoGenome/pkg/split"
	"github.com/liserjrqlxue/MitoGenome/pkg/util"
)

// flag
var (
	seed       int64
	gz         bool
	verbose    bool
	cpuProfile string
)

var rootCmd = &cobra.Command{
	Use:   "semiRandomSplit [flags] INPUT_FASTQ_GZ NUMBER_OF_SPLITS",
	Short: "Random split of interleaved paired-end reads",
	Long: `Throw each read pair of a gzip compressed, interleaved paired-end fastq file
to one of NUMBER_OF_SPLITS files. Pairs are read NUMBER_OF_SPLITS at a time and
shuffled over the outputs, so the parts stay balanced.

Outputs are named <basename>_part<N>.fastq next to the input.`,
	Args: cobra.ExactArgs(2),
	RunE: run,
}

func init() {
	rootCmd.Flags().Int64VarP(&seed, "seed", "s", 0, "random seed, 0 for time based")
	rootCmd.Flags().BoolVarP(&gz, "gzip", "z", false, "gzip compressed parts (.fastq.gz)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug log")
	rootCmd.Flags().StringVar(&cpuProfile, "cpu", "", "write cpu profile to file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	t0 := time.Now()
	util.InitLog(cmd.ErrOrStderr(), verbose)
	var splits, err = strconv.Atoi(args[1])
	if err != nil || splits < 1 {
		return errors.Errorf("number of splits must be a positive integer, got %q", args[1])
	}
	if cpuProfile != "" {
		var LogCPUProfile = osUtil.Create(cpuProfile)
		defer simpleUtil.DeferClose(LogCPUProfile)
		simpleUtil.CheckErr(pprof.StartCPUProfile(LogCPUProfile))
		defer pprof.StopCPUProfile()
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	slog.Info("Split", "input", args[0], "splits", splits, "seed", seed)

	stats, names, err := split.SplitFile(args[0], splits, gz, rand.New(rand.NewSource(seed)))
	simpleUtil.CheckErr(err)
	for i, name := range names {
		slog.Info("Part", "file", name, "pairs", stats.Blocks[i])
	}

	slog.Info("Done", "pairs", stats.Total(), "batches", stats.Batches, "elapsed", time.Since(t0))
	return nil
}
