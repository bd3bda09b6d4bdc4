package azureprobe

import (
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	armcompute "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v5"
)

func deallocatedVM(name, size string) *armcompute.VirtualMachine {
	vmSize := armcompute.VirtualMachineSizeTypes(size)
	return &armcompute.VirtualMachine{
		Name:     to.Ptr(name),
		Location: to.Ptr("eastus"),
		Properties: &armcompute.VirtualMachineProperties{
			HardwareProfile: &armcompute.HardwareProfile{VMSize: &vmSize},
			InstanceView: &armcompute.VirtualMachineInstanceView{
				Statuses: []*armcompute.InstanceViewStatus{
					{Code: to.Ptr("ProvisioningState/succeeded")},
					{Code: to.Ptr("PowerState/deallocated")},
				},
			},
		},
	}
}

func runningVM(name string) *armcompute.VirtualMachine {
	return &armcompute.VirtualMachine{
		Name:     to.Ptr(name),
		Location: to.Ptr("eastus"),
		Properties: &armcompute.VirtualMachineProperties{
			InstanceView: &armcompute.VirtualMachineInstanceView{
				Statuses: []*armcompute.InstanceViewStatus{
					{Code: to.Ptr("PowerState/running")},
				},
			},
		},
	}
}

func TestVMFindings_DeallocatedVMFlagged(t *testing.T) {
	findings := vmFindings([]*armcompute.VirtualMachine{
		deallocatedVM("vm-idle", "Standard_D2s_v3"),
		runningVM("vm-busy"),
	})

	if len(findings) != 1 {
		t.Fatalf("expected 1 finding, got %d", len(findings))
	}

	f := findings[0]
	if f.ResourceID != "vm-idle" {
		t.Fatalf("expected vm-idle, got %s", f.ResourceID)
	}
	if f.Region != "eastus" {
		t.Fatalf("expected region eastus, got %s", f.Region)
	}
	if f.CurrentConfig != "Standard_D2s_v3" {
		t.Fatalf("unexpected config: %s", f.CurrentConfig)
	}
	if f.EstimatedMonthlySavings != 70 {
		t.Fatalf("expected savings 70, got %f", f.EstimatedMonthlySavings)
	}
	if f.Confidence != 0.9 {
		t.Fatalf("expected confidence 0.9, got %f", f.Confidence)
	}
}

func TestVMFindings_UnknownSizeUsesDefault(t *testing.T) {
	findings := vmFindings([]*armcompute.VirtualMachine{
		deallocatedVM("vm-exotic", "Standard_M128s"),
	})

	if len(findings) != 1 {
		t.Fatalf("expected 1 finding, got %d", len(findings))
	}
	if findings[0].EstimatedMonthlySavings != defaultVMMonthly {
		t.Fatalf("expected default savings %f, got %f", defaultVMMonthly, findings[0].EstimatedMonthlySavings)
	}
}

func TestVMFindings_NoInstanceView(t *testing.T) {
	findings := vmFindings([]*armcompute.VirtualMachine{
		{Name: to.Ptr("vm-noview"), Properties: &armcompute.VirtualMachineProperties{}},
		nil,
	})
	if len(findings) != 0 {
		t.Fatalf("expected no findings, got %d", len(findings))
	}
}

func TestDiskFindings_UnattachedDiskFlagged(t *testing.T) {
	unattached := armcompute.DiskStateUnattached
	attached := armcompute.DiskStateAttached

	findings := diskFindings([]*armcompute.Disk{
		{
			Name:     to.Ptr("disk-orphan"),
			Location: to.Ptr("westeurope"),
			Properties: &armcompute.DiskProperties{
				DiskState:  &unattached,
				DiskSizeGB: to.Ptr(int32(128)),
			},
		},
		{
			Name:     to.Ptr("disk-used"),
			Location: to.Ptr("westeurope"),
			Properties: &armcompute.DiskProperties{
				DiskState:  &attached,
				DiskSizeGB: to.Ptr(int32(64)),
			},
		},
	})

	if len(findings) != 1 {
		t.Fatalf("expected 1 finding, got %d", len(findings))
	}

	f := findings[0]
	if f.ResourceID != "disk-orphan" {
		t.Fatalf("expected disk-orphan, got %s", f.ResourceID)
	}
	if f.CurrentConfig != "128GB" {
		t.Fatalf("unexpected config: %s", f.CurrentConfig)
	}
	if f.EstimatedMonthlySavings != 128*diskMonthlyPerGB {
		t.Fatalf("expected savings %f, got %f", 128*diskMonthlyPerGB, f.EstimatedMonthlySavings)
	}
	if f.Confidence != 0.95 {
		t.Fatalf("expected confidence 0.95, got %f", f.Confidence)
	}
}

func TestDiskFindings_MissingProperties(t *testing.T) {
	findings := diskFindings([]*armcompute.Disk{
		{Name: to.Ptr("disk-bare")},
		nil,
	})
	if len(findings) != 0 {
		t.Fatalf("expected no findings, got %d", len(findings))
	}
}

func TestNew_RequiresSubscriptionID(t *testing.T) {
	if _, err := New(""); err == nil {
		t.Fatal("expected error for empty subscription ID")
	}
}
