package checks

import (
	"context"
	"fmt"
	"strings"

	"asset-editor/core/storage"
	"asset-editor/feature/catalog"

	"golang.org/x/sync/errgroup"
)

// iconWorkers bounds concurrent StatObject calls.
const iconWorkers = 8

// IconIssue is a definition whose icon cannot be served.
type IconIssue struct {
	Name      string            `json:"name"`
	ID        uint32            `json:"id"`
	AssetType catalog.AssetType `json:"asset_type"`
	Icon      string            `json:"icon"`
	Key       string            `json:"key,omitempty"`
}

// IconReport is the result of an icon check.
type IconReport struct {
	Checked int         `json:"checked"`
	Missing []IconIssue `json:"missing"`
	Blank   []IconIssue `json:"blank"`
}

// CheckIcons stats the icon of every entry. Entries with an empty icon path
// are reported as blank without a storage call. Report order follows
// entries.
func CheckIcons(ctx context.Context, client storage.Client, bucket string, iconKey func(string) string, entries []catalog.Entry) (*IconReport, error) {
	report := &IconReport{Checked: len(entries), Missing: []IconIssue{}, Blank: []IconIssue{}}
	found := make([]bool, len(entries))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(iconWorkers)
	for i, e := range entries {
		if strings.TrimSpace(e.Icon) == "" {
			found[i] = true
			continue
		}
		g.Go(func() error {
			key := iconKey(e.Icon)
			ok, err := storage.ObjectExists(gctx, client, bucket, key)
			if err != nil {
				return fmt.Errorf("failed to stat icon %s of %s: %w", key, e.Name, err)
			}
			found[i] = ok
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, e := range entries {
		issue := IconIssue{Name: e.Name, ID: e.ID, AssetType: e.AssetType, Icon: e.Icon}
		switch {
		case strings.TrimSpace(e.Icon) == "":
			report.Blank = append(report.Blank, issue)
		case !found[i]:
			issue.Key = iconKey(e.Icon)
			report.Missing = append(report.Missing, issue)
		}
	}
	return report, nil
}
