// Package render turns a room record into a complete, self-contained HTML page.
//
// Every function in this package is pure: the same room and description always
// produce the same bytes. Record text is HTML-escaped; the surrounding markup is
// fixed and shared by every page.
package render

import (
	"html"
	"strings"

	"villa_rooms/internal/domain"
)

const siteName = "Luxury Villa Retreat"

// primaryAmenities is the size of the first amenities column and of the
// amenity list quoted in the meta description.
const primaryAmenities = 3

// Page renders the full document for one room.
func Page(room domain.Room, description string) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n")
	b.WriteString(Head(room))
	b.WriteString("<body>\n")
	b.WriteString(Navigation())
	b.WriteString("\n")
	b.WriteString(RoomHeader(room, description))
	b.WriteString("\n")
	b.WriteString(details(room, description))
	b.WriteString("\n")
	b.WriteString(Policies(room))
	b.WriteString("\n")
	b.WriteString(Footer())
	b.WriteString("\n")
	b.WriteString(Scripts())
	b.WriteString("</body>\n</html>")
	return b.String()
}

// details lays out the overview and amenities next to the booking sidebar.
func details(room domain.Room, description string) string {
	var b strings.Builder
	b.WriteString(`    <!-- Room Details -->
    <section class="py-16 bg-white">
        <div class="max-w-7xl mx-auto px-4 sm:px-6 lg:px-8">
            <div class="grid grid-cols-1 lg:grid-cols-3 gap-12">
                <!-- Room Information -->
                <div class="lg:col-span-2">
`)
	b.WriteString(Overview(room, description))
	b.WriteString("\n")
	b.WriteString(Amenities(room))
	b.WriteString(`                </div>

                <!-- Booking Sidebar -->
                <div class="lg:col-span-1">
`)
	b.WriteString(BookingForm(room))
	b.WriteString(`                </div>
            </div>
        </div>
    </section>
`)
	return b.String()
}

// MetaAmenities is the lower-cased, comma-joined list of the leading amenities
// used in the meta description. Shorter lists are joined as they are.
func MetaAmenities(amenities []string) string {
	lead, _ := SplitAmenities(amenities)
	return strings.ToLower(strings.Join(lead, ", "))
}

// SplitAmenities returns the two amenity columns: positions [0,3) and the rest.
// Lists of three or fewer leave the second column empty.
func SplitAmenities(amenities []string) (first, rest []string) {
	if len(amenities) <= primaryAmenities {
		return amenities, nil
	}
	return amenities[:primaryAmenities], amenities[primaryAmenities:]
}

// esc escapes record text. Browsers display the same characters as the
// unescaped original, but names and amenities cannot inject markup.
func esc(s string) string { return html.EscapeString(s) }
