/*
Copyright © 2024 Ryan Painter paintersrp@gmail.com

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package keywords

import (
	"github.com/spf13/cobra"

	"github.com/Paintersrp/qb/internal/printer"
	"github.com/Paintersrp/qb/internal/state"
	"github.com/Paintersrp/qb/pkg/shared/arg"
	"github.com/Paintersrp/qb/pkg/shared/flags"
)

func NewCmdKeywords(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "keywords [PATH|s3://bucket/key]",
		Aliases: []string{"kw"},
		Short:   "Print the keywords the board would offer",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			location, err := arg.HandleLocation(args, s.Config)
			if err != nil {
				return err
			}

			st, err := s.BoardAt(cmd.Context(), location)
			if err != nil {
				return err
			}

			words := st.Keywords()
			p := printer.New(cmd.OutOrStdout())
			p.Title("Keywords", len(words), "keyword")
			p.Keywords(words, st.Items())
			return nil
		},
	}

	flags.AddLimit(cmd)
	return cmd
}
