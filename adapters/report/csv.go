package report

import (
	"encoding/csv"
	"os"
)

// writeCSV writes the summary table with the run identity on every row so
// several runs can be concatenated.
func writeCSV(path string, doc *document) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)

	runID, fingerprint, seed := lookup(doc, "run_id"), lookup(doc, "fingerprint"), lookup(doc, "seed")

	headers := append([]string{"run_id", "seed", "fingerprint"}, doc.summary.headers...)
	if err := w.Write(headers); err != nil {
		return err
	}
	for _, row := range doc.summary.rows {
		if err := w.Write(append([]string{runID, seed, fingerprint}, row...)); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}

func lookup(doc *document, key string) string {
	for _, kv := range doc.manifest {
		if kv[0] == key {
			return kv[1]
		}
	}
	return ""
}
