package main

import (
	"fmt"
	"os"

	"github.com/gb-at-r3/janus-array/offsets"
	"github.com/goccy/go-yaml"
)

// The YAML layout description mirrors the hierarchy: a file size plus
// nested slices, commands and elements, each with an absolute byte
// range. Relative ranges default to the absolute range rebased against
// the parent's start. Ordinals follow document order.
//
//	size: 1024
//	slices:
//	  - start: 0
//	    end: 512
//	    commands:
//	      - start: 100
//	        end: 200
//	        elements:
//	          - {start: 150, end: 180}

type rangeDoc struct {
	Start uint64 `yaml:"start"`
	End   uint64 `yaml:"end"`
}

type elementDoc struct {
	Start uint64    `yaml:"start"`
	End   uint64    `yaml:"end"`
	Rel   *rangeDoc `yaml:"rel"`
}

type commandDoc struct {
	Start    uint64       `yaml:"start"`
	End      uint64       `yaml:"end"`
	Rel      *rangeDoc    `yaml:"rel"`
	Elements []elementDoc `yaml:"elements"`
}

type sliceDoc struct {
	Start    uint64       `yaml:"start"`
	End      uint64       `yaml:"end"`
	Rel      *rangeDoc    `yaml:"rel"`
	Commands []commandDoc `yaml:"commands"`
}

type layoutDoc struct {
	Size   uint64     `yaml:"size"`
	Slices []sliceDoc `yaml:"slices"`
}

// loadLayout reads a YAML layout description and builds the offset tree.
func loadLayout(path string) (*offsets.File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc layoutDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse layout %s: %w", path, err)
	}
	return buildLayout(&doc)
}

func buildLayout(doc *layoutDoc) (*offsets.File, error) {
	f := offsets.NewFile(doc.Size)
	for i, sd := range doc.Slices {
		if err := checkRange("slice", i, sd.Start, sd.End, 0); err != nil {
			return nil, err
		}
		s := &offsets.Slice{}
		rs, re := relOf(sd.Rel, sd.Start, sd.End, 0)
		s.PopulateValues(sd.Start, sd.End, rs, re, offsets.Ordinal(i))

		for j, cd := range sd.Commands {
			if err := checkRange("command", j, cd.Start, cd.End, sd.Start); err != nil {
				return nil, err
			}
			c := &offsets.Command{}
			crs, cre := relOf(cd.Rel, cd.Start, cd.End, sd.Start)
			c.PopulateValues(cd.Start, cd.End, crs, cre, offsets.Ordinal(j))

			for k, ed := range cd.Elements {
				if err := checkRange("element", k, ed.Start, ed.End, cd.Start); err != nil {
					return nil, err
				}
				e := &offsets.Element{}
				ers, ere := relOf(ed.Rel, ed.Start, ed.End, cd.Start)
				e.PopulateValues(ed.Start, ed.End, ers, ere, offsets.Ordinal(k))
				c.AddElement(e)
			}
			s.AddCommand(c)
		}
		f.AddSlice(s)
	}
	return f, nil
}

// relOf returns the explicit relative range when given, otherwise the
// absolute range rebased against the parent's start.
func relOf(rel *rangeDoc, start, end, parentStart uint64) (uint64, uint64) {
	if rel != nil {
		return rel.Start, rel.End
	}
	return start - parentStart, end - parentStart
}

func checkRange(level string, idx int, start, end, parentStart uint64) error {
	if end < start {
		return fmt.Errorf("layout: %s %d has inverted range [%d, %d)", level, idx, start, end)
	}
	if start < parentStart {
		return fmt.Errorf("layout: %s %d starts at %d, before its parent at %d", level, idx, start, parentStart)
	}
	return nil
}
