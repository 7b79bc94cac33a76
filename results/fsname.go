package results

// KnownFilesystems returns the result directory names with a dedicated
// display name.
func KnownFilesystems() []string {
	return []string{
		"ext4", "ext4-dax", "nova", "nova-cow", "splitfs",
		"ulayfs", "madfs", "pmfs", "xfs", "xfs-dax",
	}
}

// FSName returns the display name for a filesystem result directory.
// Unknown names are returned unchanged.
func FSName(dirName string) string {
	switch dirName {
	case "ext4", "ext4-dax":
		return "Ext4-DAX"
	case "nova":
		return "NOVA"
	case "nova-cow":
		return "NOVA-COW"
	case "splitfs":
		return "SplitFS"
	case "ulayfs", "madfs":
		return "MadFS"
	case "pmfs":
		return "PMFS"
	case "xfs", "xfs-dax":
		return "XFS-DAX"
	default:
		return dirName
	}
}
