package main

import "github.com/charmbracelet/lipgloss"

const (
	pageTextFGColor     = "#c0c0c0"
	currentRouteBGColor = "#3a3a3a"
	currentRouteFGColor = "#e0e0e0"
)

var (
	// Styles
	appstyle    = lipgloss.NewStyle().Margin(1, 2)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	pageStyle   = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240"))

	routeStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color(pageTextFGColor)).Padding(0, 1)
	currentRouteStyle = lipgloss.NewStyle().
				Background(lipgloss.Color(currentRouteBGColor)).
				Foreground(lipgloss.Color(currentRouteFGColor)).
				Padding(0, 1)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	routeMarker = "▐"
)
