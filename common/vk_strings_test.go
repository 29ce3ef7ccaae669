package common

import (
	"testing"

	vk "github.com/goki/vulkan"
	"github.com/stretchr/testify/assert"
)

func TestVendorAndDriverNames(t *testing.T) {
	assert.Equal(t, "NVIDIA", asVendorName(0x10DE))
	assert.Equal(t, "INTEL", asVendorName(0x8086))
	assert.Equal(t, "unknown", asVendorName(0x1234))

	raw := uint32(535<<22 | 104<<14 | 5<<6 | 1)
	assert.Equal(t, "535.104.5.1", asDriverVersion(0x10DE, raw))
}

func TestDeviceTypeAndQueueFlags(t *testing.T) {
	assert.Equal(t, "discrete GPU", asDeviceType(vk.PhysicalDeviceTypeDiscreteGpu))
	assert.Equal(t, "CPU", asDeviceType(vk.PhysicalDeviceTypeCpu))

	flags := vk.QueueFlags(vk.QueueGraphicsBit | vk.QueueTransferBit)
	assert.Equal(t, []string{"graphics", "transfer"}, queueFlagNames(flags))
	assert.Empty(t, queueFlagNames(0))
}

func TestFormatAdapters(t *testing.T) {
	assert.Equal(t, "no Vulkan adapters found\n", FormatAdapters(nil))

	out := FormatAdapters([]AdapterInfo{{
		Name:          "Test GPU",
		Vendor:        "AMD",
		VendorID:      0x1002,
		DeviceType:    "discrete GPU",
		APIVersion:    "1.3.239",
		DriverVersion: "2.0.0",
		QueueFamilies: []QueueFamily{
			{Count: 1, Flags: []string{"graphics", "compute"}},
			{Count: 2, Flags: []string{"transfer"}},
		},
	}})
	assert.Equal(t, "[0] Test GPU\n"+
		"|_ type: discrete GPU, vendor: AMD (0x1002), api: 1.3.239, driver: 2.0.0\n"+
		"| Qfamily[0] count:  1, flags: graphics,compute\n"+
		"|_Qfamily[1] count:  2, flags: transfer\n", out)
}
