package formatter

import (
	"fmt"
	"strings"

	"github.com/mumpitzstuff/goodTimes/internal/contract"
)

// FormatSnapshot renders the outcome of an archive snapshot.
func FormatSnapshot(resp *contract.SnapshotResponse) string {
	var b strings.Builder
	writeField(&b, "Fetched", fmt.Sprintf("%d events", resp.Fetched))
	writeField(&b, "New", fmt.Sprintf("%d events", resp.Inserted))
	writeField(&b, "Archived", fmt.Sprintf("%d events total", resp.Total))
	return RenderBox("Archive Snapshot", b.String())
}

// FormatPrune renders the outcome of an archive prune.
func FormatPrune(resp *contract.PruneResponse) string {
	var b strings.Builder
	writeField(&b, "Cutoff", resp.Cutoff.Format("2006-01-02 15:04"))
	writeField(&b, "Removed", fmt.Sprintf("%d events", resp.Removed))
	writeField(&b, "Remaining", fmt.Sprintf("%d events", resp.Remaining))
	return RenderBox("Archive Prune", b.String())
}

// FormatArchiveInfo renders the state of the event archive.
func FormatArchiveInfo(info *contract.ArchiveInfo) string {
	var b strings.Builder
	writeField(&b, "Path", info.Path)
	writeField(&b, "Events", fmt.Sprintf("%d", info.Count))
	if info.Oldest != nil && info.Newest != nil {
		writeField(&b, "Oldest", info.Oldest.Format("2006-01-02 15:04"))
		writeField(&b, "Newest", info.Newest.Format("2006-01-02 15:04"))
	} else {
		b.WriteString(Dim("The archive is empty.") + "\n")
	}
	return RenderBox("Archive", b.String())
}
