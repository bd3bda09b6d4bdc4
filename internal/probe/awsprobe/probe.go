// Package awsprobe scans an AWS account for idle, orphaned, and oversized
// resources and reports findings grouped by category.
package awsprobe

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"golang.org/x/sync/errgroup"

	"github.com/ppiankov/costspectre/internal/probe"
)

// categoryScanner is the interface each resource-type scanner implements.
type categoryScanner interface {
	Category() string
	Scan(ctx context.Context) ([]probe.Finding, error)
}

// Options controls probe behavior.
type Options struct {
	Profile      string
	Regions      []string
	LookbackDays int
	StaleDays    int
	Concurrency  int
}

// Probe scans AWS resources across regions.
type Probe struct {
	client *Client
	opts   Options
}

// New creates an AWS probe. If no regions are configured, enabled regions
// are discovered at analyze time.
func New(ctx context.Context, opts Options) (*Probe, error) {
	if opts.LookbackDays <= 0 {
		opts.LookbackDays = 30
	}
	if opts.StaleDays <= 0 {
		opts.StaleDays = 90
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = 4
	}

	client, err := NewClient(ctx, opts.Profile, "")
	if err != nil {
		return nil, err
	}
	return &Probe{client: client, opts: opts}, nil
}

// Name returns the provider name.
func (p *Probe) Name() string {
	return "aws"
}

// Analyze scans all configured regions plus the global S3 namespace and
// returns findings grouped by category. A failing region or scanner is
// logged and skipped; it never aborts the rest of the scan.
func (p *Probe) Analyze(ctx context.Context) (map[string]probe.CategoryResult, error) {
	regions, err := p.resolveRegions(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("Scanning AWS regions", "count", len(regions))

	var (
		mu         sync.Mutex
		byCategory = map[string][]probe.Finding{
			CategoryEC2:      {},
			CategoryEBS:      {},
			CategoryEIP:      {},
			CategoryRDS:      {},
			CategorySnapshot: {},
			CategoryS3:       {},
		}
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.opts.Concurrency)

	for _, region := range regions {
		region := region
		g.Go(func() error {
			slog.Debug("Scanning region", "region", region)
			for _, scanner := range p.regionScanners(region) {
				findings, err := scanner.Scan(gctx)
				if err != nil {
					slog.Warn("Scanner failed", "category", scanner.Category(), "region", region, "error", err)
					continue
				}
				mu.Lock()
				byCategory[scanner.Category()] = append(byCategory[scanner.Category()], findings...)
				mu.Unlock()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	// S3 is global, scanned once outside the region loop
	s3Scanner := NewS3Scanner(s3.NewFromConfig(p.client.Config()))
	findings, err := s3Scanner.Scan(ctx)
	if err != nil {
		slog.Warn("Scanner failed", "category", s3Scanner.Category(), "error", err)
	} else {
		byCategory[s3Scanner.Category()] = findings
	}

	results := make(map[string]probe.CategoryResult, len(byCategory))
	for category, items := range byCategory {
		results[category] = probe.Summarize(items)
	}
	return results, nil
}

// regionScanners creates the per-region resource scanners.
func (p *Probe) regionScanners(region string) []categoryScanner {
	cfg := p.client.ConfigForRegion(region)
	ec2Client := ec2.NewFromConfig(cfg)
	metrics := NewMetricsFetcher(cloudwatch.NewFromConfig(cfg))
	rdsClient := rds.NewFromConfig(cfg)

	return []categoryScanner{
		NewEC2Scanner(ec2Client, metrics, region, p.opts.LookbackDays),
		NewEBSScanner(ec2Client, region),
		NewEIPScanner(ec2Client, region),
		NewRDSScanner(rdsClient, metrics, region, p.opts.LookbackDays),
		NewSnapshotScanner(ec2Client, region, p.opts.StaleDays),
	}
}

func (p *Probe) resolveRegions(ctx context.Context) ([]string, error) {
	if len(p.opts.Regions) > 0 {
		return p.opts.Regions, nil
	}

	regions, err := p.client.ListEnabledRegions(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve regions: %w", err)
	}
	return regions, nil
}
