package ingest

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/aitacurator/aitacurator/internal/conf"
	"github.com/aitacurator/aitacurator/internal/corpus"
	"github.com/aitacurator/aitacurator/internal/datastore"
	"github.com/aitacurator/aitacurator/internal/logging"
)

var printer = message.NewPrinter(language.English)

// batchSize holds the --batch-size flag value
var batchSize int

func Command(settings *conf.Settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Export the raw Reddit dump into the CSV tables",
		Long: "Ingest reads the submission and comment tables out of the raw dump\n" +
			"database and writes them as data/submission.csv and data/comment.csv,\n" +
			"the input of every other command.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if batchSize < 1 {
				return fmt.Errorf("batch size must be positive, got %d", batchSize)
			}
			return runIngest(settings)
		},
	}

	cmd.Flags().IntVarP(&batchSize, "batch-size", "b", settings.Database.BatchSize, "rows read per batch")

	return cmd
}

func runIngest(settings *conf.Settings) error {
	log := logging.ForService("ingest")
	start := time.Now()

	if err := conf.EnsureOutputDirs(settings); err != nil {
		return err
	}

	store, err := datastore.New(settings)
	if err != nil {
		return err
	}
	if err := store.Open(); err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Error("closing dump database", "error", err)
		}
	}()

	submissionCount, err := store.CountSubmissions()
	if err != nil {
		return err
	}
	commentCount, err := store.CountComments()
	if err != nil {
		return err
	}

	fmt.Printf("🚀 Exporting raw dump (%s)\n", settings.Database.Type)
	printer.Printf("Found %d submissions and %d comments\n", submissionCount, commentCount)
	log.Info("ingest started",
		"type", settings.Database.Type,
		"submissions", submissionCount,
		"comments", commentCount,
		"batch_size", batchSize)

	exported, err := exportSubmissions(store, settings.SubmissionsPath(), submissionCount)
	if err != nil {
		return err
	}
	printer.Printf("✅ Exported %d submissions to %s\n", exported, settings.SubmissionsPath())

	exported, err = exportComments(store, settings.CommentsPath(), commentCount)
	if err != nil {
		return err
	}
	printer.Printf("✅ Exported %d comments to %s\n", exported, settings.CommentsPath())

	fmt.Printf("Completed in %s\n", time.Since(start).Round(time.Millisecond))
	log.Info("ingest completed", "duration", time.Since(start).String())

	return nil
}

func exportSubmissions(store datastore.Interface, path string, total int64) (int64, error) {
	writer, err := corpus.NewSubmissionWriter(path)
	if err != nil {
		return 0, err
	}

	var processed int64
	batchNum := 0
	err = store.SubmissionsInBatches(batchSize, func(batch []datastore.RawSubmission) error {
		batchNum++
		rows := make([]corpus.Submission, 0, len(batch))
		for i := range batch {
			rows = append(rows, batch[i].Submission())
		}
		if err := writer.Append(rows); err != nil {
			return err
		}
		processed += int64(len(batch))
		if batchNum%10 == 0 {
			fmt.Printf("  submissions: %d/%d (%.1f%%)\n", processed, total,
				float64(processed)/float64(total)*100)
		}
		return nil
	})
	if err != nil {
		writer.Close()
		return processed, err
	}

	return processed, writer.Close()
}

func exportComments(store datastore.Interface, path string, total int64) (int64, error) {
	writer, err := corpus.NewCommentWriter(path)
	if err != nil {
		return 0, err
	}

	var processed int64
	batchNum := 0
	err = store.CommentsInBatches(batchSize, func(batch []datastore.RawComment) error {
		batchNum++
		rows := make([]corpus.Comment, 0, len(batch))
		for i := range batch {
			rows = append(rows, batch[i].Comment())
		}
		if err := writer.Append(rows); err != nil {
			return err
		}
		processed += int64(len(batch))
		if batchNum%10 == 0 {
			fmt.Printf("  comments: %d/%d (%.1f%%)\n", processed, total,
				float64(processed)/float64(total)*100)
		}
		return nil
	})
	if err != nil {
		writer.Close()
		return processed, err
	}

	return processed, writer.Close()
}
