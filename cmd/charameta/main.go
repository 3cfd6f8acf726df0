// Copyright 2026 OpenRouter Team
// SPDX-License-Identifier: MIT

// Command charameta extracts character cards from JSON, PNG or WebP files
// and prints the normalized records as JSON.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/OpenRouterTeam/character"
)

type output struct {
	File        string             `json:"file"`
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Avatar      string             `json:"avatar,omitempty"`
	Metadata    character.Metadata `json:"metadata"`
}

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	var (
		includeAvatar bool
		mediaTypeFlag string
	)

	root := &cobra.Command{
		Use:   "charameta <file>...",
		Short: "Extract character card metadata embedded in image files",
		Long: `charameta reads character cards from JSON documents, PNG images
(embedded in a "chara" text chunk) and WebP images (embedded in the EXIF
UserComment tag) and prints one normalized JSON record per file.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")

			var failed int
			for _, path := range args {
				card, err := extract(path, mediaTypeFlag, log)
				if err != nil {
					log.Error("extraction failed", "file", path, "err", err)
					failed++
					continue
				}
				out := output{
					File:        path,
					Name:        card.Name(),
					Description: card.Description(),
					Metadata:    card.Metadata(),
				}
				if includeAvatar {
					out.Avatar = card.Avatar()
				}
				if err := enc.Encode(out); err != nil {
					return err
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files failed", failed, len(args))
			}
			return nil
		},
	}

	root.Flags().BoolVar(&includeAvatar, "avatar", false, "include the resolved avatar data URI in the output")
	root.Flags().StringVar(&mediaTypeFlag, "media-type", "", "media type of the inputs (default: inferred from extension)")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func extract(path, mediaTypeFlag string, log *slog.Logger) (*character.Character, error) {
	warnf := func(format string, args ...any) {
		log.Warn(fmt.Sprintf(format, args...), "file", path)
	}

	var (
		mediaType character.MediaType
		err       error
	)
	if mediaTypeFlag == "" {
		mediaType, err = character.MediaTypeFromPath(path)
	} else {
		mediaType, err = character.ParseMediaType(mediaTypeFlag)
	}
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return character.Decode(character.Options{R: f, MediaType: mediaType, Warnf: warnf})
}
