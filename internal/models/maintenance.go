// ABOUTME: Report produced by one retention maintenance pass
// ABOUTME: Lists the record dates touched by each due-window
package models

// MaintenanceReport lists the dates summarized and purged by one pass
type MaintenanceReport struct {
	Summarized3d []string `json:"summarized_3d"`
	Summarized7d []string `json:"summarized_7d"`
	Purged14d    []string `json:"purged_14d"`
}
