package main

/*
去除组装序列两端的环状冗余:
寻找重复出现的片段，保留第一次出现到最后一次出现之间的序列
*/

import (
	"log/slog"
	"os"
	"runtime/pprof"
	"time"

	"github.com/liserjrqlxue/goUtil/osUtil"
	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/liserjrqlxue/MitoGenome/pkg/circular"
	"github.com/liserjrqlxue/MitoGenome/pkg/util"
)

// flag
var (
	length     int
	multi      bool
	rawRegexp  bool
	plotFile   string
	verbose    bool
	cpuProfile string
)

var rootCmd = &cobra.Command{
	Use:   "circularFilter [flags] INPUT_FASTA > OUTPUT_FASTA",
	Short: "Circular extraction",
	Long: `Find a pattern repeated inside each sequence and extract the circle between
its copies, keeping the pattern at the left side and removing it from the right.

By default each sequence is searched independently. With --multi all sequences
are searched with the same offsets so they begin at the same position; sequences
the best pattern can not cut are left out.`,
	Args: cobra.ExactArgs(1),
	RunE: run,
}

func init() {
	rootCmd.Flags().IntVarP(&length, "length", "l", util.PatternLength, "length of the pattern to search")
	rootCmd.Flags().BoolVarP(&multi, "multi", "m", false, "look for the same pattern in all sequences")
	rootCmd.Flags().BoolVar(&rawRegexp, "regexp", false, "use the pattern as a regular expression, unescaped")
	rootCmd.Flags().StringVarP(&plotFile, "plot", "p", "", "write circle length by offset to image file, format by extension")
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
	if length <= 0 {
		return errors.Errorf("--length must be > 0, got %d", length)
	}
	if cpuProfile != "" {
		var LogCPUProfile = osUtil.Create(cpuProfile)
		defer simpleUtil.DeferClose(LogCPUProfile)
		simpleUtil.CheckErr(pprof.StartCPUProfile(LogCPUProfile))
		defer pprof.StopCPUProfile()
	}

	var matcher circular.Matcher = circular.Literal{}
	if rawRegexp {
		matcher = circular.NewRegexp()
	}

	var seqs = simpleUtil.HandleError(util.ReadFasta(args[0]))
	slog.Info("Load", "input", args[0], "seqs", len(seqs), "length", length, "multi", multi)

	var (
		circs  []util.Seq
		tracks []circular.Track
	)
	if multi {
		var profile circular.Profile
		circs, profile = circular.MultiProfile(seqs, length, matcher)
		tracks = append(tracks, circular.Track{Name: "joint", Profile: profile})
		if len(circs) < len(seqs) {
			slog.Warn("sequences without shared circle", "dropped", len(seqs)-len(circs))
		}
	} else {
		for _, s := range seqs {
			var circ, profile = circular.SingleProfile(s, length, matcher)
			if circ.IsEmpty() {
				slog.Warn("no circle found", "name", s.Name, "length", s.Len())
			} else {
				slog.Debug("circle", "name", s.Name, "from", s.Len(), "to", circ.Len())
			}
			circs = append(circs, circ)
			tracks = append(tracks, circular.Track{Name: s.Name, Profile: profile})
		}
	}

	var n = simpleUtil.HandleError(util.WriteSeqs(cmd.OutOrStdout(), circs))

	if plotFile != "" {
		if err := circular.PlotProfiles(plotFile, tracks...); err != nil {
			slog.Error("plot", "file", plotFile, "err", err)
		}
	}

	slog.Info("Done", "circles", n, "elapsed", time.Since(t0))
	return nil
}
