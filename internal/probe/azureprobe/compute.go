package azureprobe

import (
	"fmt"
	"strings"

	armcompute "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v5"

	"github.com/ppiankov/costspectre/internal/probe"
)

// deallocatedPowerState is the instance-view status code for a VM that is
// stopped and deallocated but still billed for its disks.
const deallocatedPowerState = "PowerState/deallocated"

// diskMonthlyPerGB approximates standard managed-disk storage cost.
const diskMonthlyPerGB = 0.05

// vmMonthlyCost approximates the monthly cost of common VM sizes. Unknown
// sizes fall back to a conservative default.
var vmMonthlyCost = map[string]float64{
	"Standard_B1s":    8,
	"Standard_B2s":    30,
	"Standard_B2ms":   60,
	"Standard_D2s_v3": 70,
	"Standard_D4s_v3": 140,
	"Standard_D8s_v3": 280,
	"Standard_F2s_v2": 62,
	"Standard_F4s_v2": 124,
	"Standard_E2s_v3": 97,
}

const defaultVMMonthly = 50.0

// vmFindings flags deallocated VMs, which still incur managed-disk charges.
func vmFindings(vms []*armcompute.VirtualMachine) []probe.Finding {
	var findings []probe.Finding

	for _, vm := range vms {
		if vm == nil || vm.Name == nil {
			continue
		}
		if !isDeallocated(vm) {
			continue
		}

		size := vmSize(vm)
		findings = append(findings, probe.Finding{
			ResourceID:              *vm.Name,
			ResourceType:            "Virtual Machine",
			Region:                  derefString(vm.Location),
			Issue:                   "Deallocated VM still incurring disk charges",
			CurrentConfig:           size,
			Recommendation:          "Delete if not needed",
			EstimatedMonthlySavings: estimateVMSavings(size),
			Confidence:              0.9,
		})
	}

	return findings
}

// diskFindings flags unattached managed disks.
func diskFindings(disks []*armcompute.Disk) []probe.Finding {
	var findings []probe.Finding

	for _, disk := range disks {
		if disk == nil || disk.Name == nil || disk.Properties == nil {
			continue
		}
		if disk.Properties.DiskState == nil || *disk.Properties.DiskState != armcompute.DiskStateUnattached {
			continue
		}

		sizeGB := int(0)
		if disk.Properties.DiskSizeGB != nil {
			sizeGB = int(*disk.Properties.DiskSizeGB)
		}

		findings = append(findings, probe.Finding{
			ResourceID:              *disk.Name,
			ResourceType:            "Managed Disk",
			Region:                  derefString(disk.Location),
			Issue:                   "Unattached disk",
			CurrentConfig:           sizeLabel(sizeGB),
			Recommendation:          "Delete if not needed or create snapshot",
			EstimatedMonthlySavings: float64(sizeGB) * diskMonthlyPerGB,
			Confidence:              0.95,
		})
	}

	return findings
}

func isDeallocated(vm *armcompute.VirtualMachine) bool {
	if vm.Properties == nil || vm.Properties.InstanceView == nil {
		return false
	}
	for _, status := range vm.Properties.InstanceView.Statuses {
		if status != nil && status.Code != nil && strings.EqualFold(*status.Code, deallocatedPowerState) {
			return true
		}
	}
	return false
}

func vmSize(vm *armcompute.VirtualMachine) string {
	if vm.Properties == nil || vm.Properties.HardwareProfile == nil || vm.Properties.HardwareProfile.VMSize == nil {
		return ""
	}
	return string(*vm.Properties.HardwareProfile.VMSize)
}

func estimateVMSavings(size string) float64 {
	if cost, ok := vmMonthlyCost[size]; ok {
		return cost
	}
	return defaultVMMonthly
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func sizeLabel(sizeGB int) string {
	if sizeGB <= 0 {
		return ""
	}
	return fmt.Sprintf("%dGB", sizeGB)
}
