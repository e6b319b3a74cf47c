package main

import (
	"encoding/json"
	"io"

	"github.com/basedlsg/PLugg-sub000/internal/accumulator"
	"github.com/basedlsg/PLugg-sub000/internal/app"
	"github.com/basedlsg/PLugg-sub000/internal/fusion"
	"github.com/basedlsg/PLugg-sub000/internal/morph"
	"github.com/basedlsg/PLugg-sub000/internal/platform/config"
	"github.com/basedlsg/PLugg-sub000/internal/platform/logging"
	"github.com/basedlsg/PLugg-sub000/internal/version"
	"github.com/spf13/cobra"
)

// cli carries state shared by every subcommand.
type cli struct {
	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:           "wordsynth",
		Short:         "Word-driven signal fusion and parameter morphing",
		Version:       version.Get().String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logging.InitLogger(cfg.LogLevel, cfg.LogFormat)
			c.cfg = cfg
			return nil
		},
	}

	root.AddCommand(c.newProcessCmd())
	root.AddCommand(c.newPhraseCmd())
	root.AddCommand(c.newMorphCmd())
	root.AddCommand(c.newLiveCmd())
	root.AddCommand(newVersionCmd())
	return root
}

// sessionConfig maps process settings onto component configs.
func sessionConfig(cfg *config.Config) app.Config {
	fc := fusion.DefaultConfig()
	fc.Weights = fusion.Weights{
		Phonetic:  cfg.PhoneticWeight,
		Semantic:  cfg.SemanticWeight,
		Sentiment: cfg.SentimentWeight,
	}
	fc.ContextInfluence = cfg.ContextInfluence
	fc.Smoothing = cfg.Smoothing
	fc.DefaultScale = cfg.DefaultScale

	ac := accumulator.Config{
		ShortTermSize:  cfg.ShortTermSize,
		LongTermDecay:  cfg.LongTermDecay,
		ParameterDecay: cfg.ParameterDecay,
	}

	mc := morph.DefaultConfig()
	mc.MomentumDecay = cfg.MomentumDecay
	mc.AccelerationFactor = cfg.AccelerationFactor
	mc.MaxVelocity = cfg.MaxVelocity
	mc.HistoryCapacity = cfg.HistoryCapacity
	mc.AnticipationInfluence = cfg.AnticipationInfluence
	mc.AnticipationTTL = cfg.AnticipationTTL
	mc.BlendDuration = cfg.BlendDuration
	mc.Speeds = cfg.SpeedOverrides()

	return app.Config{Fusion: fc, Context: ac, Morph: mc}
}

func newEncoder(w io.Writer, pretty bool) *json.Encoder {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc
}
