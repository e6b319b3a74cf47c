package main

import (
	"fmt"
	"strings"

	"github.com/basedlsg/PLugg-sub000/internal/app"
	"github.com/basedlsg/PLugg-sub000/internal/domain"
	"github.com/spf13/cobra"
)

func (c *cli) newProcessCmd() *cobra.Command {
	var pretty, preview bool

	cmd := &cobra.Command{
		Use:   "process <word>...",
		Short: "Fuse each word in turn and print one result per word",
		Long: `Process runs every word through the fusion engine. Context carries over
from word to word, so later results are shaped by earlier ones.`,
		Example: `  wordsynth process ocean
  wordsynth process fire ocean thunder --pretty
  wordsynth process --preview ocean`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := app.NewSession(sessionConfig(c.cfg), app.Deps{})
			if err != nil {
				return err
			}
			enc := newEncoder(cmd.OutOrStdout(), pretty)
			for _, word := range args {
				var result domain.FusionResult
				if preview {
					result = session.Anticipate(word, 0)
				} else {
					result = session.SubmitWord(word)
				}
				if err := enc.Encode(result); err != nil {
					return fmt.Errorf("encode %q: %w", word, err)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "Indent JSON output")
	cmd.Flags().BoolVar(&preview, "preview", false, "Print each word as a preview without recording it")
	return cmd
}

func (c *cli) newPhraseCmd() *cobra.Command {
	var pretty bool

	cmd := &cobra.Command{
		Use:   "phrase <text>",
		Short: "Fuse a whole phrase into one result",
		Example: `  wordsynth phrase "quiet rain over the deep sea"
  wordsynth phrase very sad dark night --pretty`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := app.NewSession(sessionConfig(c.cfg), app.Deps{})
			if err != nil {
				return err
			}
			result := session.SubmitPhrase(strings.Join(args, " "))
			return newEncoder(cmd.OutOrStdout(), pretty).Encode(result)
		},
	}

	cmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "Indent JSON output")
	return cmd
}
