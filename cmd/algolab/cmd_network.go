package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/algolab/socialgraph"
)

func (a *app) networkCmd() *cobra.Command {
	var pairs []string
	cmd := &cobra.Command{
		Use:   "network",
		Short: "Explore a friendship network given as --friends a:b pairs",
	}
	cmd.PersistentFlags().StringArrayVar(&pairs, "friends", nil, "friendship as NAME:NAME (repeatable)")

	build := func() (*socialgraph.Network, error) {
		n := socialgraph.NewNetwork()
		for _, p := range pairs {
			x, y, ok := strings.Cut(p, ":")
			if !ok {
				return nil, fmt.Errorf("network: friendship %q is not NAME:NAME", p)
			}
			if err := n.Befriend(x, y); err != nil {
				return nil, err
			}
		}
		a.logger.Debug("network built", zap.Int("people", n.Len()), zap.Int("friendships", len(pairs)))
		return n, nil
	}

	path := &cobra.Command{
		Use:   "path FROM TO",
		Short: "Print the shortest friendship chain and degrees of separation",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := build()
			if err != nil {
				return err
			}
			if !n.HasPerson(args[1]) {
				return fmt.Errorf("%w: %q", socialgraph.ErrPersonNotFound, args[1])
			}
			res, err := socialgraph.BFS(n, args[0], socialgraph.WithContext(cmd.Context()))
			if err != nil {
				return err
			}
			chain, err := res.PathTo(args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%d degrees)\n", strings.Join(chain, " -> "), res.Depth[args[1]])
			return nil
		},
	}

	var limit int
	suggest := &cobra.Command{
		Use:   "suggest NAME",
		Short: "Suggest friends of friends ranked by mutual friends",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := build()
			if err != nil {
				return err
			}
			out, err := socialgraph.SuggestFriends(n, args[0], limit)
			if err != nil {
				return err
			}
			for _, s := range out {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d mutual\n", s.ID, s.Mutual)
			}
			return nil
		},
	}
	suggest.Flags().IntVar(&limit, "limit", 5, "maximum suggestions (0 for all)")

	cmd.AddCommand(path, suggest)

	return cmd
}
