// Package azureprobe scans an Azure subscription for deallocated VMs and
// unattached managed disks and reports findings grouped by category.
package azureprobe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	armcompute "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v5"

	"github.com/ppiankov/costspectre/internal/probe"
)

// Category labels for Azure findings.
const (
	CategoryVM   = "Virtual Machines"
	CategoryDisk = "Managed Disks"
)

// Probe scans Azure compute resources in one subscription.
type Probe struct {
	subscriptionID string
	factory        *armcompute.ClientFactory
}

// New creates an Azure probe using the default credential chain.
func New(subscriptionID string) (*Probe, error) {
	if subscriptionID == "" {
		return nil, errors.New("azure subscription id is required")
	}

	cred, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return nil, fmt.Errorf("authenticate with Azure: %w", err)
	}

	factory, err := armcompute.NewClientFactory(subscriptionID, cred, nil)
	if err != nil {
		return nil, fmt.Errorf("create Azure compute clients: %w", err)
	}

	return &Probe{subscriptionID: subscriptionID, factory: factory}, nil
}

// Name returns the provider name.
func (p *Probe) Name() string {
	return "azure"
}

// Analyze lists VMs and managed disks across the subscription. A failing
// listing is logged and its category reported empty; it never aborts the
// other category.
func (p *Probe) Analyze(ctx context.Context) (map[string]probe.CategoryResult, error) {
	results := map[string]probe.CategoryResult{
		CategoryVM:   probe.Summarize(nil),
		CategoryDisk: probe.Summarize(nil),
	}

	vms, err := p.listVMs(ctx)
	if err != nil {
		slog.Warn("Azure VM listing failed", "error", err)
	} else {
		results[CategoryVM] = probe.Summarize(vmFindings(vms))
	}

	disks, err := p.listDisks(ctx)
	if err != nil {
		slog.Warn("Azure disk listing failed", "error", err)
	} else {
		results[CategoryDisk] = probe.Summarize(diskFindings(disks))
	}

	return results, nil
}

func (p *Probe) listVMs(ctx context.Context) ([]*armcompute.VirtualMachine, error) {
	client := p.factory.NewVirtualMachinesClient()
	pager := client.NewListAllPager(&armcompute.VirtualMachinesClientListAllOptions{
		StatusOnly: to.Ptr("true"),
	})

	var vms []*armcompute.VirtualMachine
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("list virtual machines: %w", err)
		}
		vms = append(vms, page.Value...)
	}
	return vms, nil
}

func (p *Probe) listDisks(ctx context.Context) ([]*armcompute.Disk, error) {
	client := p.factory.NewDisksClient()
	pager := client.NewListPager(nil)

	var disks []*armcompute.Disk
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("list managed disks: %w", err)
		}
		disks = append(disks, page.Value...)
	}
	return disks, nil
}
