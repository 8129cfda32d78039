package ui

// Layout sizes in terminal cells.
const (
	// sidebarWidth is the width of the route list, border included.
	sidebarWidth = 18

	// breadcrumbDepth is how many back or forward entries the header shows
	// before collapsing the rest into an ellipsis.
	breadcrumbDepth = 3

	// helpWidth is the width of the help overlay.
	helpWidth = 44
)
