package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ncobase/npage/config"
	"github.com/ncobase/npage/paging"
	"github.com/ncobase/npage/rest"
)

// NewFetchCommand creates the fetch command
func NewFetchCommand() *cobra.Command {
	var (
		configPath string
		opName     string
		endpoint   string
		method     string
		params     []string
		limit      int
		pageSize   int
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Iterate a paged list operation and print its items as JSON lines",
		Example: `  npage fetch --config pagination.yaml --operation ListObjects \
    --endpoint https://api.example.com/objects --param MaxKeys=100`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}

			provider, err := config.New(configPath)
			if err != nil {
				return err
			}

			op := rest.NewOperation(opName, endpoint)
			if method != "" {
				op.SetMethod(strings.ToUpper(method))
			}
			for _, pair := range params {
				key, value, ok := strings.Cut(pair, "=")
				if !ok || key == "" {
					return fmt.Errorf("invalid --param %q, expected key=value", pair)
				}
				op.Set(key, value)
			}

			it, err := provider.Registry(nil).Build(op, &paging.Options{
				Limit:    limit,
				PageSize: pageSize,
			})
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			ctx := cmd.Context()
			for it.Next(ctx) {
				if err := enc.Encode(it.Item()); err != nil {
					return err
				}
			}
			return it.Err()
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "pagination configuration file")
	cmd.Flags().StringVarP(&opName, "operation", "o", "", "configured operation name")
	cmd.Flags().StringVarP(&endpoint, "endpoint", "e", "", "endpoint URL")
	cmd.Flags().StringVarP(&method, "method", "m", "", "HTTP method (default GET)")
	cmd.Flags().StringArrayVarP(&params, "param", "p", nil, "request parameter as key=value, repeatable")
	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "cap on the total number of items (0 = unlimited)")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "per-page size hint")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	_ = cmd.MarkFlagRequired("config")
	_ = cmd.MarkFlagRequired("operation")
	_ = cmd.MarkFlagRequired("endpoint")

	return cmd
}
