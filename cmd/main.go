package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/yungbote/videoscripter-backend/internal/app"
	"github.com/yungbote/videoscripter-backend/internal/services"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "videoscripter",
		Short:         "Collect catalog videos into projects and write scripts from them",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCommand(), newMigrateCommand(), newIngestCommand(), newTokenCommand())
	return root
}

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, cfg, err := app.Bootstrap()
			if err != nil {
				return err
			}
			a, err := app.New(cmd.Context(), log, cfg)
			if err != nil {
				log.Sync()
				return err
			}
			defer a.Close()
			return a.Run(cmd.Context())
		},
	}
}

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update tables and partial unique indexes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, cfg, err := app.Bootstrap()
			if err != nil {
				return err
			}
			defer log.Sync()
			dbs, err := app.OpenDB(log, cfg, true)
			if err != nil {
				return err
			}
			defer dbs.Close()
			log.Info("migration complete", "driver", dbs.Driver())
			return nil
		},
	}
}

func newIngestCommand() *cobra.Command {
	var projectID, ownerID string
	cmd := &cobra.Command{
		Use:   "ingest [videoId...]",
		Short: "Add catalog videos to a project",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pid, err := uuid.Parse(projectID)
			if err != nil {
				return fmt.Errorf("--project: %w", err)
			}
			oid, err := uuid.Parse(ownerID)
			if err != nil {
				return fmt.Errorf("--owner: %w", err)
			}
			log, cfg, err := app.Bootstrap()
			if err != nil {
				return err
			}
			a, err := app.New(cmd.Context(), log, cfg)
			if err != nil {
				log.Sync()
				return err
			}
			defer a.Close()
			res, err := a.Services.Ingestion.Ingest(cmd.Context(), services.IngestRequest{
				ProjectID:        pid,
				OwnerID:          oid,
				ExternalVideoIDs: args,
			})
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(res); err != nil {
				return err
			}
			if !res.Success {
				return fmt.Errorf("ingest failed: %s", res.Message)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&projectID, "project", "", "project id")
	cmd.Flags().StringVar(&ownerID, "owner", "", "owner id")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("owner")
	return cmd
}

func newTokenCommand() *cobra.Command {
	var ownerID string
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Sign a local access token for an owner id",
		RunE: func(cmd *cobra.Command, _ []string) error {
			oid, err := uuid.Parse(ownerID)
			if err != nil {
				return fmt.Errorf("--owner: %w", err)
			}
			log, cfg, err := app.Bootstrap()
			if err != nil {
				return err
			}
			defer log.Sync()
			tok, err := services.NewAuthService(log, cfg.JWTSecretKey, cfg.AccessTokenTTL).IssueAccessToken(oid)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	}
	cmd.Flags().StringVar(&ownerID, "owner", "", "owner id")
	_ = cmd.MarkFlagRequired("owner")
	return cmd
}
