package dashboard

import "fmt"

// CSS/XPath selectors for the booking dashboard. The page is a MUI-rendered
// SPA, so most of these are generated class names that break on frontend
// redeploys; centralising them keeps updates in one place.
const (
	selLoginBackdrop = "div.MuiBackdrop-root.MuiModal-backdrop"

	selLoginIcon       = `button[aria-label="log in"]`
	selLoginEmail      = "input#email"
	selLoginPassword   = "input#password"
	selPostLoginMenu   = "button.MuiIconButton-edgeEnd"
	jsClickLoginSubmit = `document.querySelector('button[type="submit"]').click()`

	selDateButton = "button.MuiButtonBase-root.css-ab6e07"
	xpCalendarOK  = `//button[normalize-space(text())="OK"]`

	selReservationItem = "div.MuiPaper-root"

	xpStoreListing = `//*[normalize-space(text())="마리엠헤어"]`
	xpTeamChip     = `//div[contains(@class,"MuiChip-root")][contains(.,"TEAM")]`

	selDetailItem = "li.css-jywvn2"

	selDetailName          = "h6.css-qdk4z1"
	selDetailReservationNo = "h6.css-1r042ka"
	selDetailNationality   = "span.css-xcju41"
	selDetailTime          = "p.css-17exa0r"
	selDetailProduct       = "p.css-1q5lgor"
	selDetailChannel       = "div.MuiAvatar-root"
	selDetailPartySize     = "span.css-70qvj9"
)

// xpCalendarDay matches the calendar gridcell for a day of month by its
// exact text.
func xpCalendarDay(day string) string {
	return fmt.Sprintf(`//*[@role="gridcell" and normalize-space(text())=%q]`, day)
}
