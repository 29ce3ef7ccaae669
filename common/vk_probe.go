package common

import (
	"fmt"
	"log"

	vk "github.com/goki/vulkan"
	"github.com/veandco/go-sdl2/sdl"
)

// github.com/goki/vulkan v1.0.7 binds Vulkan API 1.3.239
const VK_SPEC_MAJOR, VK_SPEC_MINOR, VK_SPEC_PATCH int = 1, 3, 239

type QueueFamily struct {
	Count uint32
	Flags []string
}

// AdapterInfo is the printable summary of one Vulkan physical device.
type AdapterInfo struct {
	Name          string
	Vendor        string
	VendorID      uint32
	DeviceType    string
	APIVersion    string
	DriverVersion string
	QueueFamilies []QueueFamily
}

func newAdapterInfo(props vk.PhysicalDeviceProperties, families []vk.QueueFamilyProperties) AdapterInfo {
	vendor := vk.VendorId(props.VendorID)
	info := AdapterInfo{
		Name:          vk.ToString(props.DeviceName[:]),
		Vendor:        asVendorName(vendor),
		VendorID:      props.VendorID,
		DeviceType:    asDeviceType(props.DeviceType),
		APIVersion:    vk.Version(props.ApiVersion).String(),
		DriverVersion: asDriverVersion(vendor, props.DriverVersion),
	}
	for _, f := range families {
		info.QueueFamilies = append(info.QueueFamilies, QueueFamily{Count: f.QueueCount, Flags: queueFlagNames(f.QueueFlags)})
	}
	return info
}

// ProbeAdapters lists the Vulkan capable GPUs next to the OpenGL context the sandbox renders with. SDL has to be
// initialized already. A machine without a Vulkan loader yields an error, not a panic.
func ProbeAdapters() ([]AdapterInfo, error) {
	if err := sdl.VulkanLoadLibrary(""); err != nil {
		return nil, fmt.Errorf("failed to load Vulkan library: %w", err)
	}
	defer sdl.VulkanUnloadLibrary()

	vk.SetGetInstanceProcAddr(sdl.VulkanGetVkGetInstanceProcAddr())
	if err := vk.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize Vulkan API: %w", err)
	}
	exts, err := ReadInstanceExtensionPropertyNames()
	if err != nil {
		return nil, err
	}
	log.Printf("Available instance extensions (%d): %v", len(exts), exts)

	instance, err := createProbeInstance()
	if err != nil {
		return nil, err
	}
	defer vk.DestroyInstance(instance, nil)

	devices, err := readPhysicalDevices(instance)
	if err != nil {
		return nil, err
	}
	adapters := make([]AdapterInfo, 0, len(devices))
	for _, pd := range devices {
		adapters = append(adapters, newAdapterInfo(readPhysicalDeviceProperties(pd), readQueueFamilies(pd)))
	}
	return adapters, nil
}

func createProbeInstance() (vk.Instance, error) {
	applicationInfo := &vk.ApplicationInfo{
		SType:              vk.StructureTypeApplicationInfo,
		PApplicationName:   TerminatedStr(APPLICATION_NAME),
		ApplicationVersion: vk.MakeVersion(APP_MAJOR, APP_MINOR, APP_PATCH),
		PEngineName:        TerminatedStr("No Engine"),
		ApiVersion:         vk.MakeVersion(VK_SPEC_MAJOR, VK_SPEC_MINOR, VK_SPEC_PATCH),
	}
	createInfo := &vk.InstanceCreateInfo{
		SType:            vk.StructureTypeInstanceCreateInfo,
		PApplicationInfo: applicationInfo,
	}
	var in vk.Instance
	if err := vk.Error(vk.CreateInstance(createInfo, nil, &in)); err != nil {
		return nil, fmt.Errorf("failed to create vk instance: %w", err)
	}
	if err := vk.InitInstance(in); err != nil {
		return nil, fmt.Errorf("failed to init vk instance: %w", err)
	}
	return in, nil
}
