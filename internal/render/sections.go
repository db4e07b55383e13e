package render

import (
	"fmt"
	"strings"

	"villa_rooms/internal/domain"
)

// Head renders the <head> element: title, meta description, stylesheets and
// the third-party UI and payment scripts.
func Head(room domain.Room) string {
	name := esc(room.Name)
	return fmt.Sprintf(`<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s - %s</title>
    <meta name="description" content="Book our %s featuring %s. Perfect for luxury travelers seeking comfort and elegance.">
    <link rel="stylesheet" href="../css/main.css">
    <link rel="stylesheet" href="../css/responsive.css">
    <script src="https://cdn.tailwindcss.com"></script>
    <script src="https://js.stripe.com/v3/"></script>
</head>
`, name, siteName, name, esc(MetaAmenities(room.Amenities)))
}

// Navigation is identical on every page.
func Navigation() string { return navigation }

const navigation = `    <!-- Navigation -->
    <nav class="bg-white shadow-lg fixed w-full top-0 z-50">
        <div class="max-w-7xl mx-auto px-4 sm:px-6 lg:px-8">
            <div class="flex justify-between h-16">
                <div class="flex items-center">
                    <a href="../index.html" class="text-2xl font-bold text-gray-800">Luxury Villa Retreat</a>
                </div>
                <div class="hidden md:flex items-center space-x-8">
                    <a href="../index.html" class="text-gray-700 hover:text-blue-600 font-medium">Home</a>
                    <a href="../location.html" class="text-gray-700 hover:text-blue-600 font-medium">Location</a>
                    <a href="../index.html#rooms" class="text-gray-700 hover:text-blue-600 font-medium">Rooms</a>
                    <a href="../index.html#contact" class="text-gray-700 hover:text-blue-600 font-medium">Contact</a>
                </div>
                <div class="md:hidden flex items-center">
                    <button id="mobile-menu-btn" class="text-gray-700 hover:text-blue-600">
                        <svg class="w-6 h-6" fill="none" stroke="currentColor" viewBox="0 0 24 24">
                            <path stroke-linecap="round" stroke-linejoin="round" stroke-width="2" d="M4 6h16M4 12h16M4 18h16"></path>
                        </svg>
                    </button>
                </div>
            </div>
        </div>
        <!-- Mobile menu -->
        <div id="mobile-menu" class="hidden md:hidden bg-white border-t">
            <div class="px-2 pt-2 pb-3 space-y-1">
                <a href="../index.html" class="block px-3 py-2 text-gray-700 hover:text-blue-600">Home</a>
                <a href="../location.html" class="block px-3 py-2 text-gray-700 hover:text-blue-600">Location</a>
                <a href="../index.html#rooms" class="block px-3 py-2 text-gray-700 hover:text-blue-600">Rooms</a>
                <a href="../index.html#contact" class="block px-3 py-2 text-gray-700 hover:text-blue-600">Contact</a>
            </div>
        </div>
    </nav>
`

// NightlyRate formats a price as "$<price>/night".
func NightlyRate(price int) string { return fmt.Sprintf("$%d/night", price) }

// RoomHeader shows the name, description and nightly price.
func RoomHeader(room domain.Room, description string) string {
	return fmt.Sprintf(`    <!-- Room Header -->
    <section class="room-header bg-gradient-to-r from-gray-50 to-blue-50 pt-20">
        <div class="max-w-7xl mx-auto px-4 sm:px-6 lg:px-8 py-16">
            <div class="text-center">
                <h1 class="text-4xl md:text-5xl font-bold text-gray-900 mb-4">%s</h1>
                <p class="text-xl text-gray-600 mb-6">%s</p>
                <div class="room-price text-3xl font-bold text-blue-600 mb-8">
                    $%d<span class="text-lg font-normal text-gray-500">/night</span>
                </div>
                <div class="flex flex-col sm:flex-row gap-4 justify-center">
                    <button onclick="scrollToBooking()" class="bg-blue-600 text-white px-8 py-3 rounded-lg font-semibold hover:bg-blue-700 transition duration-300">
                        Book Now
                    </button>
                    <a href="../index.html#rooms" class="bg-white text-blue-600 px-8 py-3 rounded-lg font-semibold border-2 border-blue-600 hover:bg-blue-50 transition duration-300">
                        View All Rooms
                    </a>
                </div>
            </div>
        </div>
    </section>
`, esc(room.Name), esc(description), room.Price)
}

// Overview expands the description into the three overview paragraphs.
func Overview(room domain.Room, description string) string {
	return fmt.Sprintf(`                    <div class="mb-12">
                        <h2 class="text-3xl font-bold text-gray-900 mb-6">Room Overview</h2>
                        <p class="text-lg text-gray-600 mb-6">
                            %s This thoughtfully designed space combines luxury with functionality to create the perfect retreat for discerning guests.
                        </p>
                        <p class="text-lg text-gray-600 mb-6">
                            Every detail has been carefully considered to ensure your comfort and satisfaction. From premium furnishings to state-of-the-art amenities, this room provides everything you need for an exceptional stay.
                        </p>
                        <p class="text-lg text-gray-600">
                            Whether you're traveling for business or leisure, our %s offers the perfect blend of comfort, style, and convenience to make your stay truly memorable.
                        </p>
                    </div>
`, esc(description), esc(strings.ToLower(room.Name)))
}

// Amenities renders the two-column amenity grid.
func Amenities(room domain.Room) string {
	first, rest := SplitAmenities(room.Amenities)
	var b strings.Builder
	b.WriteString(`                    <!-- Room Amenities -->
                    <div class="room-amenities mb-12">
                        <h3 class="text-2xl font-bold text-gray-900 mb-6">Room Amenities</h3>
                        <div class="grid grid-cols-1 md:grid-cols-2 gap-6">
`)
	amenityColumn(&b, first)
	amenityColumn(&b, rest)
	b.WriteString(`                        </div>
                    </div>
`)
	return b.String()
}

func amenityColumn(b *strings.Builder, items []string) {
	b.WriteString(`                            <div class="amenities-list">
                                <ul class="space-y-3">
`)
	for _, a := range items {
		fmt.Fprintf(b, `                                    <li class="amenity-item flex items-center">
                                        <svg class="amenity-icon w-5 h-5 text-blue-600 mr-3" fill="none" stroke="currentColor" viewBox="0 0 24 24">
                                            <path stroke-linecap="round" stroke-linejoin="round" stroke-width="2" d="M5 13l4 4L19 7"></path>
                                        </svg>
                                        <span>%s</span>
                                    </li>
`, esc(a))
	}
	b.WriteString(`                                </ul>
                            </div>
`)
}

// GuestLabel is "1 Guest" for one and "N Guests" otherwise.
func GuestLabel(n int) string {
	if n == 1 {
		return "1 Guest"
	}
	return fmt.Sprintf("%d Guests", n)
}

// GuestOptions renders one <option> per allowed guest count, 1..maxGuests.
func GuestOptions(maxGuests int) string {
	var b strings.Builder
	for n := 1; n <= maxGuests; n++ {
		fmt.Fprintf(&b, "                                    <option value=\"%d\">%s</option>\n", n, GuestLabel(n))
	}
	return b.String()
}

// BookingForm renders the sidebar booking form with the guest selector and
// the rate summary. Totals are filled in client-side by booking.js.
func BookingForm(room domain.Room) string {
	return fmt.Sprintf(`                    <div class="booking-form bg-white p-6 rounded-lg shadow-lg border sticky top-24">
                        <h3 class="text-2xl font-bold text-gray-900 mb-6">Book This Room</h3>

                        <form id="room-booking-form" class="space-y-4">
                            <div>
                                <label for="checkin" class="block text-sm font-medium text-gray-700 mb-1">Check-in Date</label>
                                <input type="date" id="checkin" name="checkin" required
                                       class="w-full px-3 py-2 border border-gray-300 rounded-md focus:ring-blue-500 focus:border-blue-500">
                            </div>

                            <div>
                                <label for="checkout" class="block text-sm font-medium text-gray-700 mb-1">Check-out Date</label>
                                <input type="date" id="checkout" name="checkout" required
                                       class="w-full px-3 py-2 border border-gray-300 rounded-md focus:ring-blue-500 focus:border-blue-500">
                            </div>

                            <div>
                                <label for="guests" class="block text-sm font-medium text-gray-700 mb-1">Guests</label>
                                <select id="guests" name="guests" required
                                        class="w-full px-3 py-2 border border-gray-300 rounded-md focus:ring-blue-500 focus:border-blue-500">
%s                                </select>
                            </div>

                            <div class="booking-summary bg-gray-50 p-4 rounded-md">
                                <div class="flex justify-between items-center mb-2">
                                    <span class="text-sm text-gray-600">Room Rate:</span>
                                    <span class="text-sm font-medium">%s</span>
                                </div>
                                <div class="flex justify-between items-center mb-2">
                                    <span class="text-sm text-gray-600">Nights:</span>
                                    <span class="text-sm font-medium" id="nights-display">0</span>
                                </div>
                                <div class="border-t pt-2">
                                    <div class="flex justify-between items-center">
                                        <span class="font-medium">Total:</span>
                                        <span class="text-xl font-bold text-blue-600" id="total-price">$0</span>
                                    </div>
                                </div>
                            </div>

                            <h4 class="text-lg font-semibold text-gray-900 mt-6 mb-4">Guest Information</h4>

                            <div class="grid grid-cols-2 gap-4">
                                <div>
                                    <label for="firstName" class="block text-sm font-medium text-gray-700 mb-1">First Name</label>
                                    <input type="text" id="firstName" name="firstName" required
                                           class="w-full px-3 py-2 border border-gray-300 rounded-md focus:ring-blue-500 focus:border-blue-500">
                                </div>
                                <div>
                                    <label for="lastName" class="block text-sm font-medium text-gray-700 mb-1">Last Name</label>
                                    <input type="text" id="lastName" name="lastName" required
                                           class="w-full px-3 py-2 border border-gray-300 rounded-md focus:ring-blue-500 focus:border-blue-500">
                                </div>
                            </div>

                            <div>
                                <label for="email" class="block text-sm font-medium text-gray-700 mb-1">Email Address</label>
                                <input type="email" id="email" name="email" required
                                       class="w-full px-3 py-2 border border-gray-300 rounded-md focus:ring-blue-500 focus:border-blue-500">
                            </div>

                            <div>
                                <label for="phone" class="block text-sm font-medium text-gray-700 mb-1">Phone Number</label>
                                <input type="tel" id="phone" name="phone" required
                                       class="w-full px-3 py-2 border border-gray-300 rounded-md focus:ring-blue-500 focus:border-blue-500">
                            </div>

                            <div>
                                <label for="special-requests" class="block text-sm font-medium text-gray-700 mb-1">Special Requests (Optional)</label>
                                <textarea id="special-requests" name="special-requests" rows="3"
                                          class="w-full px-3 py-2 border border-gray-300 rounded-md focus:ring-blue-500 focus:border-blue-500"
                                          placeholder="Any special requests or preferences..."></textarea>
                            </div>

                            <button type="submit" class="w-full bg-blue-600 text-white py-3 px-4 rounded-md font-semibold hover:bg-blue-700 transition duration-300">
                                Complete Booking
                            </button>
                        </form>

                        <div class="mt-4 text-center">
                            <p class="text-xs text-gray-500">
                                Secure payment processing with SSL encryption
                            </p>
                        </div>
                    </div>
`, GuestOptions(room.MaxGuests), NightlyRate(room.Price))
}

// Policies renders the policy cards; only the occupancy line depends on the room.
// The "&" in the check-in heading is written as an entity; it displays unchanged.
func Policies(room domain.Room) string {
	return fmt.Sprintf(`    <!-- Room Policies -->
    <section class="py-16 bg-gray-50">
        <div class="max-w-4xl mx-auto px-4 sm:px-6 lg:px-8">
            <h2 class="text-3xl font-bold text-gray-900 mb-8 text-center">Room Policies</h2>

            <div class="grid grid-cols-1 md:grid-cols-2 gap-8">
                <div class="bg-white p-6 rounded-lg shadow">
                    <h3 class="text-xl font-semibold text-gray-900 mb-4">Check-in &amp; Check-out</h3>
                    <ul class="space-y-2 text-gray-600">
                        <li>• Check-in: 3:00 PM</li>
                        <li>• Check-out: 11:00 AM</li>
                        <li>• Early check-in available upon request</li>
                        <li>• Late check-out available for additional fee</li>
                    </ul>
                </div>

                <div class="bg-white p-6 rounded-lg shadow">
                    <h3 class="text-xl font-semibold text-gray-900 mb-4">Cancellation Policy</h3>
                    <ul class="space-y-2 text-gray-600">
                        <li>• Free cancellation up to 24 hours before check-in</li>
                        <li>• 50%% charge for cancellations within 24 hours</li>
                        <li>• No-show bookings are charged in full</li>
                        <li>• Modifications subject to availability</li>
                    </ul>
                </div>

                <div class="bg-white p-6 rounded-lg shadow">
                    <h3 class="text-xl font-semibold text-gray-900 mb-4">Room Rules</h3>
                    <ul class="space-y-2 text-gray-600">
                        <li>• Maximum occupancy: %d guests</li>
                        <li>• No smoking in rooms</li>
                        <li>• Pets allowed with prior approval</li>
                        <li>• Quiet hours: 10:00 PM - 7:00 AM</li>
                    </ul>
                </div>

                <div class="bg-white p-6 rounded-lg shadow">
                    <h3 class="text-xl font-semibold text-gray-900 mb-4">Additional Services</h3>
                    <ul class="space-y-2 text-gray-600">
                        <li>• 24/7 room service available</li>
                        <li>• Daily housekeeping included</li>
                        <li>• Laundry and dry cleaning services</li>
                        <li>• Concierge assistance</li>
                    </ul>
                </div>
            </div>
        </div>
    </section>
`, room.MaxGuests)
}

// Footer is identical on every page.
func Footer() string { return footer }

const footer = `    <!-- Footer -->
    <footer class="bg-gray-900 text-white py-12">
        <div class="max-w-7xl mx-auto px-4 sm:px-6 lg:px-8">
            <div class="grid grid-cols-1 md:grid-cols-3 gap-8">
                <div>
                    <h3 class="text-xl font-semibold mb-4">Luxury Villa Retreat</h3>
                    <p class="text-gray-400">Experience the finest in luxury accommodation with our 15 unique rooms.</p>
                </div>
                <div>
                    <h3 class="text-xl font-semibold mb-4">Quick Links</h3>
                    <ul class="space-y-2">
                        <li><a href="../index.html" class="text-gray-400 hover:text-white">Home</a></li>
                        <li><a href="../location.html" class="text-gray-400 hover:text-white">Location</a></li>
                        <li><a href="../index.html#rooms" class="text-gray-400 hover:text-white">Rooms</a></li>
                        <li><a href="../index.html#contact" class="text-gray-400 hover:text-white">Contact</a></li>
                    </ul>
                </div>
                <div>
                    <h3 class="text-xl font-semibold mb-4">Contact Info</h3>
                    <ul class="space-y-2 text-gray-400">
                        <li>Phone: +1 (555) 123-4567</li>
                        <li>Email: info@luxuryvillaretreat.com</li>
                        <li>24/7 Concierge Service</li>
                    </ul>
                </div>
            </div>
            <div class="border-t border-gray-800 mt-8 pt-8 text-center">
                <p class="text-gray-400">&copy; 2024 Luxury Villa Retreat. All rights reserved.</p>
            </div>
        </div>
    </footer>
`

// Scripts references the sibling behavior scripts and defines scrollToBooking.
func Scripts() string { return scripts }

const scripts = `    <script src="../js/navigation.js"></script>
    <script src="../js/booking.js"></script>
    <script src="../js/payment.js"></script>

    <script>
        function scrollToBooking() {
            document.querySelector('.booking-form').scrollIntoView({
                behavior: 'smooth',
                block: 'start'
            });
        }
    </script>
`
