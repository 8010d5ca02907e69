package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ngsclean/internal/design"
	"ngsclean/internal/logging"
	"ngsclean/internal/readcheck"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	designFile   string
	checkWorkers int
)

// linksCmd lists the staged file names and their sources
var linksCmd = &cobra.Command{
	Use:   "links",
	Short: "List staged fastq names and the files they point to",
	Long: `Prints one line per raw fastq file: the name it is staged under in the
working directory, a tab, and the source path from the design table.`,
	Args: cobra.NoArgs,
	RunE: runLinks,
}

// streamsCmd lists the per-sample stream labels
var streamsCmd = &cobra.Command{
	Use:   "streams",
	Short: "List the read stream labels of every sample",
	Args:  cobra.NoArgs,
	RunE:  runStreams,
}

// checkCmd opens every raw fastq file and reports its first read
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Open every raw fastq file of the design and check mates agree",
	Long: `Reads the first record of every file listed in the design table. Fails
when a file is missing, empty, not FASTQ, or when the first reads of the two
mates of a paired-end sample do not share a name.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	for _, cmd := range []*cobra.Command{linksCmd, streamsCmd, checkCmd} {
		cmd.Flags().StringVar(&designFile, "design", "design.tsv", "Path to design file")
		cmd.Flags().StringVar(&designSep, "design-sep", string(design.SeparatorTab), "Design field separator: tab, comma or auto")
	}
	checkCmd.Flags().IntVar(&checkWorkers, "threads", 1, "Number of files opened concurrently")
}

func runLinks(cmd *cobra.Command, args []string) error {
	table, err := loadDesign(designFile)
	if err != nil {
		return err
	}
	links, err := design.Links(table)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, l := range links {
		fmt.Fprintf(out, "%s\t%s\n", l.Staged, l.Source)
	}
	return nil
}

func runStreams(cmd *cobra.Command, args []string) error {
	table, err := loadDesign(designFile)
	if err != nil {
		return err
	}

	streams, err := design.SampleStreams(table)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, s := range streams {
		fmt.Fprintln(out, s)
	}
	return nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	log := logging.Get(logger, logging.CategoryReadCheck)

	table, err := loadDesign(designFile)
	if err != nil {
		return err
	}
	links, err := design.Links(table)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	reports, err := readcheck.Inspect(ctx, links, readcheck.Options{Workers: checkWorkers})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, r := range reports {
		log.Debug("First read",
			zap.String("staged", r.Link.Staged),
			zap.String("source", r.Link.Source),
			zap.String("read", r.FirstRead),
			zap.Int("length", r.Length))
		fmt.Fprintf(out, "%s\t%s\t%d\n", r.Link.Staged, r.FirstRead, r.Length)
	}

	if err := readcheck.CheckPairs(reports); err != nil {
		return err
	}
	log.Info("Raw reads checked", zap.Int("files", len(reports)))
	return nil
}
