package common

import (
	"fmt"
	"strings"

	vk "github.com/goki/vulkan"
)

func asVendorName(v vk.VendorId) string {
	// PCI vendor ids of the known Vulkan implementers.
	switch v {
	case 0x1002:
		return "AMD"
	case 0x1010:
		return "ImgTec"
	case 0x10DE:
		return "NVIDIA"
	case 0x13B5:
		return "ARM"
	case 0x5143:
		return "Qualcomm"
	case 0x8086:
		return "INTEL"
	case 0x10005:
		return "Mesa"
	default:
		return "unknown"
	}
}

func asDriverVersion(vendor vk.VendorId, raw uint32) string {
	if vendor == 0x10DE { // NVIDIA packs 10.8.8.6 bits
		return nvidiaVer(raw)
	}
	return vk.Version(raw).String()
}

func nvidiaVer(i uint32) string {
	return fmt.Sprintf(
		"%d.%d.%d.%d",
		(i>>22)&0x3ff,
		(i>>14)&0x0ff,
		(i>>6)&0x0ff,
		i&0x003f,
	)
}

func asDeviceType(dt vk.PhysicalDeviceType) string {
	switch dt {
	case vk.PhysicalDeviceTypeOther:
		return "other"
	case vk.PhysicalDeviceTypeIntegratedGpu:
		return "integrated GPU"
	case vk.PhysicalDeviceTypeDiscreteGpu:
		return "discrete GPU"
	case vk.PhysicalDeviceTypeVirtualGpu:
		return "virtual GPU"
	case vk.PhysicalDeviceTypeCpu:
		return "CPU"
	default:
		return "unknown"
	}
}

func queueFlagNames(bits vk.QueueFlags) []string {
	var names []string
	flags := vk.QueueFlagBits(bits)
	if flags&vk.QueueGraphicsBit > 0 {
		names = append(names, "graphics")
	}
	if flags&vk.QueueComputeBit > 0 {
		names = append(names, "compute")
	}
	if flags&vk.QueueTransferBit > 0 {
		names = append(names, "transfer")
	}
	if flags&vk.QueueSparseBindingBit > 0 {
		names = append(names, "sparse")
	}
	if flags&vk.QueueProtectedBit > 0 {
		names = append(names, "protected")
	}
	return names
}

// FormatAdapters renders one block per adapter, queue families indented below it.
func FormatAdapters(adapters []AdapterInfo) string {
	if len(adapters) == 0 {
		return "no Vulkan adapters found\n"
	}
	b := strings.Builder{}
	for i, a := range adapters {
		b.WriteString(fmt.Sprintf("[%d] %s\n", i, a.Name))
		b.WriteString(fmt.Sprintf("|_ type: %s, vendor: %s (0x%04X), api: %s, driver: %s\n",
			a.DeviceType, a.Vendor, a.VendorID, a.APIVersion, a.DriverVersion))
		for j, q := range a.QueueFamilies {
			prefix := "| "
			if j == len(a.QueueFamilies)-1 {
				prefix = "|_"
			}
			b.WriteString(fmt.Sprintf("%sQfamily[%d] count: %2d, flags: %s\n",
				prefix, j, q.Count, strings.Join(q.Flags, ",")))
		}
	}
	return b.String()
}
