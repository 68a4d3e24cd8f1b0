package jsonl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/go-sif/sumagg"
	"github.com/go-sif/sumagg/partition"
	"github.com/hashicorp/go-multierror"
	"github.com/tidwall/gjson"
)

// ParserConf configures a JSONL Parser, suitable for JSON lines data
type ParserConf struct {
	PartitionSize   int               // The maximum number of rows per Partition. Defaults to 128.
	HeaderLines     int               // The number of lines to ignore from the beginning of the data. Defaults to 0.
	Comment         rune              // Lines beginning with the comment character are ignored. Defaults to no comment character.
	MaxBufferSize   int               // Maximum size in bytes of the buffer used to read lines
	ValuePath       string            // gjson path of the value to sum within each line. Required.
	KeyPath         string            // gjson path of the group key within each line. Optional; missing keys produce the ungrouped key.
	ValueType       sumagg.ColumnType // The declared type of the value, which determines how it is decoded. Defaults to Float64ColumnType.
	IgnoreRowErrors bool              // If true, DataSources drop lines which cannot be parsed instead of failing
}

// Parser produces partitions from JSONL data
type Parser struct {
	conf *ParserConf
}

// CreateParser returns a new JSONL Parser
func CreateParser(conf *ParserConf) *Parser {
	if conf.PartitionSize == 0 {
		conf.PartitionSize = 128
	}
	if conf.MaxBufferSize == 0 {
		conf.MaxBufferSize = bufio.MaxScanTokenSize
	}
	if conf.ValueType == nil {
		conf.ValueType = &sumagg.Float64ColumnType{}
	}
	return &Parser{conf: conf}
}

// Parse parses JSONL data to produce Partitions. Lines which cannot be parsed are skipped and
// reported together in the returned *multierror.Error, alongside the Partitions of every other line.
// Read failures are returned immediately.
func (p *Parser) Parse(r io.Reader) ([]sumagg.Partition, error) {
	if p.conf.ValuePath == "" {
		return nil, fmt.Errorf("JSONL parser requires a ValuePath")
	}
	if tag := p.conf.ValueType.Tag(); !tag.IsIntegral() && !tag.IsFloating() {
		return nil, fmt.Errorf("JSONL parser cannot decode values of type %s", sumagg.TypeName(p.conf.ValueType))
	}
	// start parsing by creating a scanner
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), p.conf.MaxBufferSize)
	var multierr *multierror.Error
	parts := make([]sumagg.Partition, 0)
	part := partition.CreatePartition()
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		// ignore header lines, if configured to do so
		if lineNum <= p.conf.HeaderLines {
			continue
		}
		line := scanner.Text()
		if strings.TrimSpace(line) == "" || (p.conf.Comment != 0 && strings.HasPrefix(line, string(p.conf.Comment))) {
			continue
		}
		row, err := p.parseLine(line)
		if err != nil {
			multierr = multierror.Append(multierr, fmt.Errorf("Unable to parse line %d: %w", lineNum, err))
			continue
		}
		part.AppendRow(row)
		// If the partition is full, start another
		if part.GetNumRows() == p.conf.PartitionSize {
			parts = append(parts, part)
			part = partition.CreatePartition()
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if part.GetNumRows() > 0 {
		parts = append(parts, part)
	}
	return parts, multierr.ErrorOrNil()
}

func (p *Parser) parseLine(line string) (sumagg.Row, error) {
	if !gjson.Valid(line) {
		return nil, fmt.Errorf("invalid JSON")
	}
	value, err := parseValue(gjson.Get(line, p.conf.ValuePath), p.conf.ValuePath, p.conf.ValueType)
	if err != nil {
		return nil, err
	}
	var key []byte
	if p.conf.KeyPath != "" {
		key = parseKey(gjson.Get(line, p.conf.KeyPath))
	}
	return partition.CreateRow(key, value), nil
}

// DataSource is a JSONL stream, parsed into Partitions on demand
type DataSource struct {
	r      io.Reader
	parser *Parser
}

// CreateDataSource is a factory for JSONL DataSources
func CreateDataSource(r io.Reader, parser *Parser) *DataSource {
	return &DataSource{r: r, parser: parser}
}

// Partitions parses the underlying stream. Unless IgnoreRowErrors is set, any unparseable line fails the whole DataSource.
func (ds *DataSource) Partitions() ([]sumagg.Partition, error) {
	parts, err := ds.parser.Parse(ds.r)
	if err != nil {
		if _, ok := err.(*multierror.Error); !ds.parser.conf.IgnoreRowErrors || !ok {
			return nil, err
		}
	}
	return parts, nil
}
