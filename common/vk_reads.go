package common

import (
	"fmt"

	vk "github.com/goki/vulkan"
)

// Read operations that require duplicated function calls, allocations and dereferencing. Unlike the renderer, the
// adapter probe is optional, so failures are returned instead of panicking.

// ReadInstanceExtensionPropertyNames returns the names of all supported instance extensions.
func ReadInstanceExtensionPropertyNames() ([]string, error) {
	extensionCount := uint32(0)
	err := vk.Error(vk.EnumerateInstanceExtensionProperties("", &extensionCount, nil))
	if err != nil {
		return nil, fmt.Errorf("failed to read number of InstanceExtensionProperties: %w", err)
	}
	extensionProperties := make([]vk.ExtensionProperties, extensionCount)
	err = vk.Error(vk.EnumerateInstanceExtensionProperties("", &extensionCount, extensionProperties))
	if err != nil {
		return nil, fmt.Errorf("failed to read %d InstanceExtensionProperties: %w", extensionCount, err)
	}
	names := make([]string, len(extensionProperties))
	for i := range extensionProperties {
		extensionProperties[i].Deref()
		names[i] = vk.ToString(extensionProperties[i].ExtensionName[:])
	}
	return names, nil
}

func readPhysicalDevices(instance vk.Instance) ([]vk.PhysicalDevice, error) {
	gpuCount := uint32(0)
	err := vk.Error(vk.EnumeratePhysicalDevices(instance, &gpuCount, nil))
	if err != nil {
		return nil, fmt.Errorf("failed to read number of PhysicalDevices: %w", err)
	}
	physDevices := make([]vk.PhysicalDevice, gpuCount)
	err = vk.Error(vk.EnumeratePhysicalDevices(instance, &gpuCount, physDevices))
	if err != nil {
		return nil, fmt.Errorf("failed to read %d PhysicalDevices: %w", gpuCount, err)
	}
	return physDevices, nil
}

func readPhysicalDeviceProperties(pd vk.PhysicalDevice) vk.PhysicalDeviceProperties {
	var pdProps vk.PhysicalDeviceProperties
	vk.GetPhysicalDeviceProperties(pd, &pdProps)
	pdProps.Deref()
	return pdProps
}

func readQueueFamilies(pd vk.PhysicalDevice) []vk.QueueFamilyProperties {
	qFamilyCount := uint32(0)
	vk.GetPhysicalDeviceQueueFamilyProperties(pd, &qFamilyCount, nil)
	qFamilyProps := make([]vk.QueueFamilyProperties, qFamilyCount)
	vk.GetPhysicalDeviceQueueFamilyProperties(pd, &qFamilyCount, qFamilyProps)
	for i := range qFamilyProps {
		qFamilyProps[i].Deref()
	}
	return qFamilyProps
}
