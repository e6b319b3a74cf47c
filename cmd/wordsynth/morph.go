package main

import (
	"strings"
	"time"

	"github.com/basedlsg/PLugg-sub000/internal/app"
	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
)

func (c *cli) newMorphCmd() *cobra.Command {
	var (
		ticks int
		every int
		dt    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "morph <word>...",
		Short: "Simulate the live vector morphing toward a word",
		Long: `Morph submits the input, then advances a simulated clock frame by frame and
prints the live frame every --every ticks. No real time passes.`,
		Example: `  wordsynth morph thunder
  wordsynth morph ocean --ticks 240 --every 30`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clock := clockwork.NewFakeClock()
			session, err := app.NewSession(sessionConfig(c.cfg), app.Deps{Clock: clock})
			if err != nil {
				return err
			}
			if len(args) == 1 {
				session.SubmitWord(args[0])
			} else {
				session.SubmitPhrase(strings.Join(args, " "))
			}

			enc := newEncoder(cmd.OutOrStdout(), false)
			for tick := 1; tick <= ticks; tick++ {
				clock.Advance(dt)
				changed := session.Tick(dt)
				if tick%every == 0 || tick == ticks || !changed {
					if err := enc.Encode(struct {
						Tick int `json:"tick"`
						app.Frame
					}{tick, session.Frame()}); err != nil {
						return err
					}
				}
				if !changed {
					break
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&ticks, "ticks", "n", 120, "Maximum number of frames to simulate")
	cmd.Flags().IntVarP(&every, "every", "e", 10, "Print every N frames")
	cmd.Flags().DurationVar(&dt, "dt", app.DefaultFrameInterval, "Simulated frame duration")
	cmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		if ticks < 1 || every < 1 || dt <= 0 {
			return errInvalidMorphFlags
		}
		return nil
	}
	return cmd
}
