package notification

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"
	"time"
)

// QuoteDetails is what the company needs to follow up on a quote request.
type QuoteDetails struct {
	Name            string
	Email           string
	Phone           string
	Service         string
	InsuranceType   string
	SubType         string
	VehicleType     string
	CoverageType    string
	PlanDuration    string
	NumberOfMembers int
	EMIRequested    bool
	Message         string
}

// Submission times are shown in the office's zone.
var officeZone = time.FixedZone("IST", 5*60*60+30*60)

const submittedLayout = "02/01/2006, 3:04:05 pm"

type quoteView struct {
	QuoteDetails
	SubmittedAt string
}

func (v quoteView) Or(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func quoteSubject(d QuoteDetails) string {
	service := d.Service
	if service == "" {
		service = "Insurance"
	}
	return fmt.Sprintf("New Quote Request - %s from %s", service, d.Name)
}

var quoteHTML = htmltemplate.Must(htmltemplate.New("quote.html").Parse(`<!DOCTYPE html>
<html>
<head>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: #4f46e5; color: white; padding: 30px; text-align: center; border-radius: 8px 8px 0 0; }
    .content { background: #f9fafb; padding: 30px; border: 1px solid #e5e7eb; }
    .section { margin-bottom: 25px; }
    .section-title { font-size: 16px; font-weight: bold; color: #4f46e5; margin-bottom: 10px; border-bottom: 2px solid #4f46e5; padding-bottom: 5px; }
    .label { font-weight: bold; min-width: 180px; color: #4b5563; display: inline-block; }
    .highlight { background: #fef3c7; padding: 15px; border-left: 4px solid #f59e0b; margin: 15px 0; border-radius: 4px; }
    .footer { background: #1f2937; color: #9ca3af; padding: 20px; text-align: center; border-radius: 0 0 8px 8px; font-size: 12px; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1 style="margin: 0; font-size: 24px;">New Quote Request</h1>
      <p style="margin: 10px 0 0 0;">A customer has requested a quote</p>
    </div>
    <div class="content">
      <div class="section">
        <div class="section-title">Customer Information</div>
        <div><span class="label">Name:</span> {{.Name}}</div>
        <div><span class="label">Email:</span> <a href="mailto:{{.Email}}">{{.Email}}</a></div>
        <div><span class="label">Phone:</span> {{.Phone}}</div>
      </div>
      <div class="section">
        <div class="section-title">Service Details</div>
        <div><span class="label">Service:</span> {{.Or .Service "N/A"}}</div>
        <div><span class="label">Insurance Type:</span> {{.Or .InsuranceType "N/A"}}</div>
        {{- if .SubType}}
        <div><span class="label">Sub Type:</span> {{.SubType}}</div>
        {{- end}}
        {{- if .VehicleType}}
        <div><span class="label">Vehicle Type:</span> {{.VehicleType}}</div>
        {{- end}}
        {{- if .CoverageType}}
        <div><span class="label">Coverage Type:</span> {{.CoverageType}}</div>
        {{- end}}
        {{- if .PlanDuration}}
        <div><span class="label">Plan Duration:</span> {{.PlanDuration}}</div>
        {{- end}}
        {{- if .NumberOfMembers}}
        <div><span class="label">Number of Members:</span> {{.NumberOfMembers}}</div>
        {{- end}}
      </div>
      {{- if .EMIRequested}}
      <div class="highlight"><strong>EMI Requested:</strong> Customer wants EMI/installment options</div>
      {{- end}}
      {{- if .Message}}
      <div class="section">
        <div class="section-title">Additional Message</div>
        <p style="padding: 15px; background: white; border: 1px solid #e5e7eb;">{{.Message}}</p>
      </div>
      {{- end}}
      <p style="margin-top: 30px; color: #4f46e5; font-weight: bold; text-align: center;">Follow up with this customer as soon as possible!</p>
    </div>
    <div class="footer">
      <p style="margin: 0;">This is an automated notification from your Reinsure website</p>
      <p style="margin: 5px 0 0 0;">Quote submitted on {{.SubmittedAt}}</p>
    </div>
  </div>
</body>
</html>
`))

var quoteText = texttemplate.Must(texttemplate.New("quote.txt").Parse(`NEW QUOTE REQUEST

CUSTOMER INFORMATION
Name: {{.Name}}
Email: {{.Email}}
Phone: {{.Phone}}

SERVICE DETAILS
Service: {{.Or .Service "N/A"}}
Insurance Type: {{.Or .InsuranceType "N/A"}}
{{if .SubType}}Sub Type: {{.SubType}}
{{end}}{{if .VehicleType}}Vehicle Type: {{.VehicleType}}
{{end}}{{if .CoverageType}}Coverage Type: {{.CoverageType}}
{{end}}{{if .PlanDuration}}Plan Duration: {{.PlanDuration}}
{{end}}{{if .NumberOfMembers}}Number of Members: {{.NumberOfMembers}}
{{end}}{{if .EMIRequested}}
EMI REQUESTED: Yes - Customer wants EMI/installment options
{{end}}{{if .Message}}
ADDITIONAL MESSAGE
{{.Message}}
{{end}}
---
Quote submitted on {{.SubmittedAt}}
`))

// renderQuote produces the HTML and plain-text bodies for d.
func renderQuote(d QuoteDetails, at time.Time) (html, text string, err error) {
	view := quoteView{
		QuoteDetails: d,
		SubmittedAt:  at.In(officeZone).Format(submittedLayout),
	}

	var hb, tb bytes.Buffer
	if err := quoteHTML.Execute(&hb, view); err != nil {
		return "", "", fmt.Errorf("render html: %w", err)
	}
	if err := quoteText.Execute(&tb, view); err != nil {
		return "", "", fmt.Errorf("render text: %w", err)
	}
	return hb.String(), tb.String(), nil
}
