package service

const confirmationTemplate = `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <div style="background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); color: white; padding: 30px; text-align: center; border-radius: 10px 10px 0 0;">
    <h1 style="margin: 0; font-size: 28px;">ParkSmart</h1>
    <p style="margin: 10px 0 0 0; opacity: 0.9;">Your Parking Booking Confirmation</p>
  </div>
  <div style="background: white; padding: 30px; border: 1px solid #e1e5e9; border-radius: 0 0 10px 10px;">
    <h2 style="color: #2d3748;">Thank you for your booking, {{.UserName}}!</h2>
    <div style="background: #f7fafc; padding: 20px; border-radius: 8px; margin-bottom: 20px;">
      <h3 style="color: #2d3748; margin-top: 0;">Booking Details</h3>
      <table style="width: 100%; border-collapse: collapse;">
        <tr><td style="padding: 8px 0;"><strong>Booking ID:</strong></td><td>{{.BookingCode}}</td></tr>
        <tr><td style="padding: 8px 0;"><strong>Parking Location:</strong></td><td>{{.LotName}}</td></tr>
        <tr><td style="padding: 8px 0;"><strong>Address:</strong></td><td>{{.LotAddress}}</td></tr>
        <tr><td style="padding: 8px 0;"><strong>Date:</strong></td><td>{{.DateFormatted}}</td></tr>
        <tr><td style="padding: 8px 0;"><strong>Start Time:</strong></td><td>{{.StartTimeFormatted}}</td></tr>
        <tr><td style="padding: 8px 0;"><strong>End Time:</strong></td><td>{{.EndTimeFormatted}}</td></tr>
        <tr><td style="padding: 8px 0;"><strong>Duration:</strong></td><td>{{.Hours}} hour{{if ne .Hours 1}}s{{end}}</td></tr>
        <tr><td style="padding: 8px 0;"><strong>Vehicle:</strong></td><td>{{.LicensePlate}}</td></tr>
        <tr><td style="padding: 8px 0;"><strong>Payment Method:</strong></td><td>{{.PaymentMethod}}</td></tr>
      </table>
    </div>
    <div style="background: #e6fffa; padding: 20px; border-radius: 8px; border-left: 4px solid #38b2ac;">
      <h3 style="color: #2d3748; margin-top: 0;">Total Amount</h3>
      <div style="font-size: 24px; font-weight: bold; color: #38b2ac;">R{{.TotalPrice}}</div>
    </div>
    <div style="text-align: center; margin-top: 30px; color: #718096; font-size: 14px;">
      <p>Thank you for choosing ParkSmart!</p>
      <p>support@parksmart.co.za</p>
    </div>
  </div>
</div>`
