/*
 Copyright 2026 NanaFS Authors.

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

package apps

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/basenana/sqljieba/pkg/ftparser"
)

var tokenizeMode string

func init() {
	tokenizeCmd.Flags().StringVar(&tokenizeMode, "mode", "simple", "parse mode: simple, stopwords or boolean")
}

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [text]",
	Short: "Print the tokens of a text, stdin is read without arguments",
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := ftparser.ParseMode(tokenizeMode)
		if err != nil {
			return err
		}

		var text []byte
		if len(args) > 0 {
			text = []byte(strings.Join(args, " "))
		} else if text, err = io.ReadAll(cmd.InOrStdin()); err != nil {
			return err
		}

		cfg, err := loadConfig(true)
		if err != nil {
			return err
		}
		parser, err := newParser(cfg)
		if err != nil {
			return err
		}
		defer parser.Deinit()

		return printTokens(context.Background(), cmd.OutOrStdout(), parser, text, mode)
	},
}

func printTokens(ctx context.Context, out io.Writer, parser *ftparser.Parser, text []byte, mode ftparser.Mode) error {
	param := ftparser.Param{Doc: text, Mode: mode}
	param.Sink = ftparser.SinkFunc(func(ctx context.Context, word []byte, info *ftparser.BooleanInfo) error {
		_, err := fmt.Fprintf(out, "%d\t%s\t%s%s\n", info.Position, info.Type, word, booleanFlags(info))
		return err
	})

	parser.Begin(ctx, param)
	defer parser.End(ctx, param)
	return parser.Parse(ctx, param)
}

func booleanFlags(info *ftparser.BooleanInfo) string {
	var flags []string
	if info.YesNo != 0 {
		flags = append(flags, fmt.Sprintf("yesno=%d", info.YesNo))
	}
	if info.WeightAdjust != 0 {
		flags = append(flags, fmt.Sprintf("weight=%d", info.WeightAdjust))
	}
	if info.WasSign {
		flags = append(flags, "negate")
	}
	if info.Trunc {
		flags = append(flags, "trunc")
	}
	if info.Quot {
		flags = append(flags, "quot")
	}
	if len(flags) == 0 {
		return ""
	}
	return "\t" + strings.Join(flags, ",")
}
