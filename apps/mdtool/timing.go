//
// timing.go
//
// Copyright (c) 2020-2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"fmt"
	"io"
	"time"

	"github.com/markkurossi/tabulate"
)

// Throughput defines data throughput in bytes per second.
type Throughput float64

func (t Throughput) String() string {
	v := float64(t)
	if v > 1000*1000*1000 {
		return fmt.Sprintf("%.2f GB/s", v/(1000*1000*1000))
	} else if v > 1000*1000 {
		return fmt.Sprintf("%.2f MB/s", v/(1000*1000))
	} else if v > 1000 {
		return fmt.Sprintf("%.2f kB/s", v/1000)
	} else {
		return fmt.Sprintf("%.0f B/s", v)
	}
}

// FileSize defines a data size in bytes.
type FileSize uint64

func (s FileSize) String() string {
	if s > 1000*1000*1000 {
		return fmt.Sprintf("%d GB", s/(1000*1000*1000))
	} else if s > 1000*1000 {
		return fmt.Sprintf("%d MB", s/(1000*1000))
	} else if s > 1000 {
		return fmt.Sprintf("%d kB", s/1000)
	} else {
		return fmt.Sprintf("%d B", s)
	}
}

// Timing records timing samples and renders a throughput report.
type Timing struct {
	Start   time.Time
	Samples []*Sample
}

// NewTiming creates a new Timing instance.
func NewTiming() *Timing {
	return &Timing{
		Start: time.Now(),
	}
}

// Sample adds a timing sample for an operation that processed bytes
// bytes.
func (t *Timing) Sample(label string, bytes uint64) *Sample {
	start := t.Start
	if len(t.Samples) > 0 {
		start = t.Samples[len(t.Samples)-1].End
	}
	sample := &Sample{
		Label: label,
		Start: start,
		End:   time.Now(),
		Bytes: bytes,
	}
	t.Samples = append(t.Samples, sample)
	return sample
}

// Print prints the timing report to w.
func (t *Timing) Print(w io.Writer) {
	if len(t.Samples) == 0 {
		return
	}

	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Op").SetAlign(tabulate.ML)
	tab.Header("Time").SetAlign(tabulate.MR)
	tab.Header("%").SetAlign(tabulate.MR)
	tab.Header("Data").SetAlign(tabulate.MR)
	tab.Header("Throughput").SetAlign(tabulate.MR)

	var total uint64
	elapsed := t.Samples[len(t.Samples)-1].End.Sub(t.Start)

	for _, sample := range t.Samples {
		row := tab.Row()
		row.Column(sample.Label)

		duration := sample.Duration()
		row.Column(duration.String())
		row.Column(fmt.Sprintf("%.2f%%",
			float64(duration)/float64(elapsed)*100))
		row.Column(FileSize(sample.Bytes).String())
		row.Column(sample.Throughput().String())

		total += sample.Bytes

		for idx, sub := range sample.Samples {
			row := tab.Row()

			var prefix string
			if idx+1 >= len(sample.Samples) {
				prefix = "\u2570\u2574"
			} else {
				prefix = "\u251C\u2574"
			}
			row.Column(prefix + sub.Label).SetFormat(tabulate.FmtItalic)

			d := sub.Duration()
			row.Column(d.String()).SetFormat(tabulate.FmtItalic)
			row.Column(
				fmt.Sprintf("%.2f%%", float64(d)/float64(duration)*100)).
				SetFormat(tabulate.FmtItalic)
			row.Column(FileSize(sub.Bytes).String()).
				SetFormat(tabulate.FmtItalic)
			row.Column(sub.Throughput().String()).
				SetFormat(tabulate.FmtItalic)
		}
	}
	row := tab.Row()
	row.Column("Total").SetFormat(tabulate.FmtBold)
	row.Column(elapsed.String()).SetFormat(tabulate.FmtBold)
	row.Column("").SetFormat(tabulate.FmtBold)
	row.Column(FileSize(total).String()).SetFormat(tabulate.FmtBold)
	row.Column(throughput(total, elapsed).String()).
		SetFormat(tabulate.FmtBold)

	tab.Print(w)
}

// Sample contains information about one timing sample.
type Sample struct {
	Label   string
	Start   time.Time
	End     time.Time
	Abs     time.Duration
	Bytes   uint64
	Samples []*Sample
}

// Duration returns the sample duration.
func (s *Sample) Duration() time.Duration {
	if s.Abs > 0 {
		return s.Abs
	}
	return s.End.Sub(s.Start)
}

// Throughput returns the sample throughput.
func (s *Sample) Throughput() Throughput {
	return throughput(s.Bytes, s.Duration())
}

func throughput(bytes uint64, d time.Duration) Throughput {
	if d <= 0 {
		return 0
	}
	return Throughput(float64(bytes) / d.Seconds())
}

// AbsSubSample adds an absolute sub-sample for a timing sample.
func (s *Sample) AbsSubSample(label string, bytes uint64,
	duration time.Duration) {
	s.Samples = append(s.Samples, &Sample{
		Label: label,
		Abs:   duration,
		Bytes: bytes,
	})
}
