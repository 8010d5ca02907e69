package design

// Canonical staged file name suffixes.
const (
	StagedSuffix   = ".fastq.gz"
	UpstreamMate   = "R1"
	DownstreamMate = "R2"
)

// SampleFiles lists the raw read files of one sample, upstream first.
type SampleFiles struct {
	SampleID string
	Files    []string
}

// Link maps a canonical staged file name onto the raw file it stands for.
type Link struct {
	SampleID string
	// Mate is "R1" or "R2" for paired designs and empty otherwise.
	Mate   string
	Staged string
	Source string
}

// StagedName returns the canonical file name of a sample read stream. An empty
// mate gives the single-end name.
func StagedName(sampleID, mate string) string {
	if mate == "" {
		return sampleID + StagedSuffix
	}
	return sampleID + "_" + mate + StagedSuffix
}

// StreamLabel returns the wildcard label of a sample read stream.
func StreamLabel(sampleID, mate string) string {
	if mate == "" {
		return sampleID
	}
	return sampleID + "." + mate
}

func mates(p Pairing) []string {
	if p == PairedEnd {
		return []string{UpstreamMate, DownstreamMate}
	}
	return []string{""}
}

func source(r Record, mate string) string {
	if mate == DownstreamMate {
		return r.Downstream
	}
	return r.Upstream
}

// FastqPairs groups the raw files of each sample, in table order. Paired
// designs give two files per sample, single-ended designs one.
func FastqPairs(t *Table) ([]SampleFiles, error) {
	if err := t.validate(); err != nil {
		return nil, err
	}
	ms := mates(t.Pairing())
	out := make([]SampleFiles, 0, len(t.rows))
	for _, r := range t.rows {
		files := make([]string, 0, len(ms))
		for _, m := range ms {
			files = append(files, source(r, m))
		}
		out = append(out, SampleFiles{SampleID: r.SampleID, Files: files})
	}
	return out, nil
}

// SampleStreams returns one label per sample read stream, sample-major:
// "S1.R1", "S1.R2", "S2.R1", ... for paired designs and the bare sample ids
// otherwise.
func SampleStreams(t *Table) ([]string, error) {
	if err := t.validate(); err != nil {
		return nil, err
	}
	ms := mates(t.Pairing())
	out := make([]string, 0, len(t.rows)*len(ms))
	for _, r := range t.rows {
		for _, m := range ms {
			out = append(out, StreamLabel(r.SampleID, m))
		}
	}
	return out, nil
}

// Links returns the staged file mapping in table order, R1 before R2. Source
// paths are passed through untouched.
func Links(t *Table) ([]Link, error) {
	if err := t.validate(); err != nil {
		return nil, err
	}
	ms := mates(t.Pairing())
	out := make([]Link, 0, len(t.rows)*len(ms))
	seen := make(map[string]int, cap(out))
	for i, r := range t.rows {
		for _, m := range ms {
			name := StagedName(r.SampleID, m)
			if first, dup := seen[name]; dup {
				return nil, &DuplicateCanonicalNameError{Name: name, FirstRow: first, Row: i + 1}
			}
			seen[name] = i + 1
			out = append(out, Link{SampleID: r.SampleID, Mate: m, Staged: name, Source: source(r, m)})
		}
	}
	return out, nil
}

// FastqLinks returns the staged file name to raw file path mapping.
func FastqLinks(t *Table) (map[string]string, error) {
	links, err := Links(t)
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(links))
	for _, l := range links {
		out[l.Staged] = l.Source
	}
	return out, nil
}
