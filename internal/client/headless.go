// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/stegasaur/internal/config"
	"github.com/MKhiriev/stegasaur/internal/workflow"
	"github.com/MKhiriev/stegasaur/models"
	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// runHeadless performs one workflow end to end: select the configured
// files, transfer, save the artifact and release it.
func (a *App) runHeadless(ctx context.Context) error {
	op := operationFor(a.run.Mode)
	action := workflow.NewAction(op, a.selector)

	for _, role := range op.Roles() {
		if err := action.Select(role, a.pathFor(role)); err != nil {
			return fmt.Errorf("%s: %w", action.Message(), err)
		}
	}

	req, ticket, err := action.Begin()
	if err != nil {
		return fmt.Errorf("%s: %w", action.Message(), err)
	}

	artifact, err := a.services.TransferService.Submit(ctx, req)
	action.Finish(ticket, err)
	if err != nil {
		var failure *models.TransferFailure
		if errors.As(err, &failure) {
			return fmt.Errorf("%s failed: %w", op, failure)
		}
		return err
	}
	defer a.services.DownloadService.Revoke(artifact.ObjectURL)

	path, err := a.services.DownloadService.Save(ctx, artifact)
	if err != nil {
		return fmt.Errorf("save %s: %w", artifact.FileName, err)
	}

	a.logger.Info().
		Str("operation", op.String()).
		Str("file", artifact.FileName).
		Str("path", path).
		Msg("artifact saved")

	_, err = fmt.Fprintln(a.out, renderSummary(op, req, artifact, path))
	return err
}

func (a *App) pathFor(role models.Role) string {
	switch role {
	case models.RoleCarrier:
		return a.run.Carrier
	case models.RoleSecret:
		return a.run.Secret
	case models.RoleEncoded:
		return a.run.Encoded
	default:
		return ""
	}
}

func operationFor(mode config.RunMode) models.Operation {
	if mode == config.RunModeDecode {
		return models.OperationDecode
	}
	return models.OperationEncode
}

func renderSummary(op models.Operation, req models.TransferRequest, artifact models.ResolvedArtifact, path string) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Role", "File", "Size", "Saved to"})

	for _, role := range op.Roles() {
		f, _ := req.File(role)
		tw.AppendRow(table.Row{role.String(), f.Name, sizeLabel(f.Size), ""})
	}
	tw.AppendSeparator()
	tw.AppendRow(table.Row{"result", artifact.FileName, sizeLabel(artifact.Size), path})

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}

func sizeLabel(size int64) string {
	if size <= 0 {
		return "-"
	}
	return humanize.Bytes(uint64(size))
}
