package render

const invoiceTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <title>Invoice {{.Doc.BusinessNumber}}</title>
  <style>
    * { margin: 0; padding: 0; box-sizing: border-box; }
    body { font-family: 'Inter', 'Segoe UI', system-ui, -apple-system, sans-serif; line-height: 1.6; color: #1f2937; padding: 24px; background: #f9fafb; }
    .invoice-container { max-width: 840px; margin: 0 auto; border: 1px solid #e5e7eb; padding: 32px; background: white; box-shadow: 0 4px 6px -1px rgba(0, 0, 0, 0.1); border-radius: 12px; }
    .company-header { display: flex; align-items: flex-start; margin-bottom: 32px; padding-bottom: 24px; border-bottom: 2px solid #e5e7eb; }
    .logo-container { flex: 0 0 100px; margin-right: 24px; }
    .logo { width: 100px; height: 100px; object-fit: contain; border-radius: 8px; border: 1px solid #e5e7eb; }
    .company-details { flex: 1; }
    .company-details h2 { color: #111827; margin-bottom: 8px; font-size: 24px; font-weight: 700; }
    .company-details p { margin-bottom: 4px; color: #6b7280; font-size: 14px; }
    .highlight { color: #2563eb; font-weight: 600; }
    .gstin { background: #1e40af; color: white; padding: 6px 12px; border-radius: 6px; display: inline-block; margin-top: 12px; font-weight: 500; font-size: 13px; letter-spacing: 0.5px; }
    .invoice-title { text-align: center; margin: 32px 0; padding: 16px; background: linear-gradient(135deg, #1e40af 0%, #3b82f6 100%); border-radius: 8px; font-size: 24px; font-weight: 700; color: white; text-transform: uppercase; letter-spacing: 1px; }
    .details-grid { display: grid; grid-template-columns: repeat(2, 1fr); gap: 24px; margin-bottom: 32px; }
    .bill-to, .invoice-details { padding: 20px; background: #f8fafc; border: 1px solid #e2e8f0; border-radius: 8px; }
    .bill-to h4, .invoice-details h4 { color: #1e40af; margin-bottom: 16px; padding-bottom: 8px; border-bottom: 2px solid #dbeafe; font-size: 16px; font-weight: 600; }
    .detail-row { display: flex; margin-bottom: 10px; align-items: flex-start; }
    .detail-label { flex: 0 0 120px; font-weight: 500; color: #4b5563; font-size: 14px; }
    .detail-value { flex: 1; color: #1f2937; font-weight: 400; font-size: 14px; }
    .gst-value { color: #059669; font-weight: 600; background: #d1fae5; padding: 4px 8px; border-radius: 4px; display: inline-block; font-size: 13px; }
    .gst-section { margin: 24px 0; padding: 20px; background: #eff6ff; border: 1px solid #bfdbfe; border-radius: 8px; }
    .gst-section h5 { color: #1e40af; margin-bottom: 12px; padding-bottom: 8px; border-bottom: 1px solid #bfdbfe; font-size: 16px; font-weight: 600; }
    .gst-grid { display: grid; grid-template-columns: repeat(2, 1fr); gap: 16px; }
    .gst-grid div { font-size: 14px; color: #4b5563; }
    .items-table { width: 100%; border-collapse: separate; border-spacing: 0; margin: 32px 0; border: 1px solid #e5e7eb; border-radius: 8px; overflow: hidden; }
    .items-table th { background: #1f2937; color: white; padding: 14px 16px; text-align: left; font-weight: 500; font-size: 14px; }
    .items-table td { padding: 12px 16px; border-top: 1px solid #e5e7eb; font-size: 14px; }
    .items-table tr:nth-child(even) { background: #f9fafb; }
    .items-table th:first-child { width: 60px; }
    .items-table td:nth-child(4),
    .items-table td:nth-child(5) { text-align: right; font-weight: 500; }
    .totals-section { margin-top: 40px; padding-top: 24px; border-top: 2px solid #e5e7eb; }
    .total-row { display: flex; justify-content: flex-end; margin-bottom: 10px; }
    .total-label { width: 180px; font-weight: 500; color: #4b5563; font-size: 15px; }
    .total-value { width: 150px; text-align: right; font-weight: 500; font-size: 15px; }
    .grand-total { font-size: 20px; color: #dc2626; margin-top: 20px; padding-top: 16px; border-top: 2px solid #e5e7eb; }
    .bank-details { margin-top: 40px; padding: 20px; background: #fefce8; border: 1px solid #fde047; border-radius: 8px; }
    .bank-details h4 { color: #854d0e; margin-bottom: 16px; padding-bottom: 8px; border-bottom: 1px solid #fde047; font-size: 16px; font-weight: 600; }
    .bank-info-grid { display: grid; grid-template-columns: repeat(2, 1fr); gap: 16px; }
    .bank-info-item { display: flex; flex-direction: column; }
    .bank-label { font-weight: 500; color: #854d0e; margin-bottom: 4px; font-size: 13px; }
    .bank-value { color: #1f2937; font-weight: 600; font-size: 14px; }
    .footer-note { margin-top: 40px; padding-top: 20px; border-top: 1px solid #e5e7eb; color: #6b7280; font-size: 13px; text-align: center; }
    .footer-note p { margin-bottom: 6px; }
    @media print {
      body { padding: 0; margin: 0; }
      .invoice-container { border: none; padding: 16px; box-shadow: none; }
      @page { margin: 0.5cm; }
      .invoice-title { background: #1e40af !important; -webkit-print-color-adjust: exact; }
      .bill-to, .invoice-details { background: #f8fafc !important; -webkit-print-color-adjust: exact; }
      .gst-section { background: #eff6ff !important; -webkit-print-color-adjust: exact; }
      .bank-details { background: #fefce8 !important; -webkit-print-color-adjust: exact; }
    }
  </style>
  <link href="https://fonts.googleapis.com/css2?family=Inter:wght@400;500;600;700&display=swap" rel="stylesheet">
</head>
<body>
  <div class="invoice-container">
    <div class="company-header">
      <div class="logo-container">
        <img src="{{.LogoPath}}" alt="Company Logo" class="logo" onerror="this.style.display='none'">
      </div>
      <div class="company-details">
        <h2>{{.Company.Name}}</h2>
        <p>{{.Company.Description}}</p>
        <p><span class="highlight">{{.Company.Phone}}</span></p>
        <p>{{.Company.Address}}</p>
        <div class="gstin">GSTIN: {{.Company.GSTIN}}</div>
      </div>
    </div>

    <div class="invoice-title">TAX INVOICE</div>

    <div class="details-grid">
      <div class="bill-to">
        <h4>Bill To</h4>
        <div class="detail-row">
          <div class="detail-label">Customer:</div>
          <div class="detail-value">{{orNA .Doc.CustomerInfo.BillTo}}</div>
        </div>
        <div class="detail-row">
          <div class="detail-label">Contact No:</div>
          <div class="detail-value">{{orNA .Doc.CustomerInfo.ContactNo}}</div>
        </div>
        <div class="detail-row">
          <div class="detail-label">State:</div>
          <div class="detail-value">{{orNA .Doc.CustomerInfo.StateName}}</div>
        </div>
        {{if .Doc.CustomerInfo.GSTIN}}
        <div class="detail-row">
          <div class="detail-label">GSTIN:</div>
          <div class="detail-value">
            <span class="gst-value">{{.Doc.CustomerInfo.GSTIN}}</span>
          </div>
        </div>
        {{end}}
      </div>

      <div class="invoice-details">
        <h4>Invoice Details</h4>
        <div class="detail-row">
          <div class="detail-label">Estimate No:</div>
          <div class="detail-value">{{.Doc.BusinessNumber}}</div>
        </div>
        <div class="detail-row">
          <div class="detail-label">Estimate Date:</div>
          <div class="detail-value">{{orNA .Doc.CustomerInfo.EstimateDate}}</div>
        </div>
        <div class="detail-row">
          <div class="detail-label">Branch:</div>
          <div class="detail-value">{{.Company.Branch}}</div>
        </div>
        <div class="detail-row">
          <div class="detail-label">Invoice Date:</div>
          <div class="detail-value">{{orNA .Doc.InvoiceDate}}</div>
        </div>
      </div>
    </div>

    <div class="gst-section">
      <h5>GST Details</h5>
      <div class="gst-grid">
        <div>
          <strong>Company GSTIN:</strong> {{.Company.GSTIN}}
        </div>
        <div>
          <strong>Customer GSTIN:</strong> {{if .Doc.CustomerInfo.GSTIN}}{{.Doc.CustomerInfo.GSTIN}}{{else}}Not Provided{{end}}
        </div>
      </div>
    </div>

    <table class="items-table">
      <thead>
        <tr>
          <th>Si.No</th>
          <th>Description</th>
          <th>Qty</th>
          <th>Rate (&#8377;)</th>
          <th>Amount (&#8377;)</th>
        </tr>
      </thead>
      <tbody>
        {{range $i, $item := .Doc.Items}}
        <tr>
          <td>{{inc $i}}</td>
          <td>{{$item.Description}}</td>
          <td>{{$item.Qty}}</td>
          <td>{{money $item.Rate}}</td>
          <td>&#8377;{{money $item.Amount}}</td>
        </tr>
        {{end}}
      </tbody>
    </table>

    <div class="totals-section">
      <div class="total-row">
        <div class="total-label">Sub Total:</div>
        <div class="total-value">&#8377;{{money .Doc.Totals.TotalAmount}}</div>
      </div>
      <div class="total-row">
        <div class="total-label">CGST (9%):</div>
        <div class="total-value">&#8377;{{money .Doc.Totals.CGST}}</div>
      </div>
      <div class="total-row">
        <div class="total-label">SGST (9%):</div>
        <div class="total-value">&#8377;{{money .Doc.Totals.SGST}}</div>
      </div>
      <div class="total-row grand-total">
        <div class="total-label">GRAND TOTAL:</div>
        <div class="total-value">&#8377;{{money .Doc.Totals.GrandTotal}}</div>
      </div>
    </div>

    <div class="bank-details">
      <h4>Bank Details</h4>
      <div class="bank-info-grid">
        <div class="bank-info-item">
          <span class="bank-label">Account Holder:</span>
          <span class="bank-value">{{.Bank.AccountHolder}}</span>
        </div>
        <div class="bank-info-item">
          <span class="bank-label">Account Number:</span>
          <span class="bank-value">{{.Bank.AccountNumber}}</span>
        </div>
        <div class="bank-info-item">
          <span class="bank-label">IFSC Code:</span>
          <span class="bank-value">{{.Bank.IFSC}}</span>
        </div>
        <div class="bank-info-item">
          <span class="bank-label">Branch:</span>
          <span class="bank-value">{{.Bank.Branch}}</span>
        </div>
        <div class="bank-info-item">
          <span class="bank-label">Account Type:</span>
          <span class="bank-value">{{.Bank.AccountType}}</span>
        </div>
        <div class="bank-info-item">
          <span class="bank-label">Bank Name:</span>
          <span class="bank-value">{{.Bank.BankName}}</span>
        </div>
      </div>
    </div>

    <div class="footer-note">
      <p>This is a computer generated tax invoice. Valid for accounting purposes.</p>
      <p>For any queries, please contact: {{.Company.Phone}}</p>
      <p>Thank you for your business!</p>
    </div>
  </div>
</body>
</html>`

const quotationTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <title>Quotation {{.Doc.BusinessNumber}}</title>
  <style>
    * { margin: 0; padding: 0; box-sizing: border-box; }
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; padding: 20px; background: #fff; }
    .quotation-container { max-width: 850px; margin: 0 auto; border: 2px solid #000; padding: 25px; background: white; }
    .company-header { display: flex; align-items: center; margin-bottom: 30px; padding-bottom: 20px; border-bottom: 2px solid #000; }
    .logo-container { flex: 0 0 120px; margin-right: 25px; }
    .logo { width: 120px; height: 120px; object-fit: contain; }
    .company-details { flex: 1; }
    .company-details h2 { color: #2c3e50; margin-bottom: 8px; font-size: 24px; font-weight: bold; }
    .company-details p { margin-bottom: 4px; color: #555; }
    .highlight { color: #e74c3c; font-weight: bold; }
    .quotation-title { text-align: center; margin: 25px 0; padding: 12px; background: #f8f9fa; border-top: 2px solid #000; border-bottom: 2px solid #000; font-size: 24px; font-weight: bold; color: #2c3e50; text-transform: uppercase; letter-spacing: 1px; }
    .details-grid { display: grid; grid-template-columns: repeat(2, 1fr); gap: 25px; margin-bottom: 30px; }
    .bill-to, .customer-details { padding: 18px; background: #f8f9fa; border: 1px solid #ddd; border-radius: 6px; }
    .bill-to h4, .customer-details h4 { color: #2c3e50; margin-bottom: 12px; padding-bottom: 6px; border-bottom: 1px solid #ccc; }
    .detail-row { display: flex; margin-bottom: 8px; }
    .detail-label { flex: 0 0 120px; font-weight: 600; color: #495057; }
    .detail-value { flex: 1; color: #2c3e50; }
    .items-table { width: 100%; border-collapse: collapse; margin: 30px 0; }
    .items-table th { background: #2c3e50; color: white; padding: 14px; text-align: center; border: 1px solid #000; font-weight: 600; }
    .items-table td { padding: 12px 14px; border: 1px solid #000; }
    .items-table td:first-child { text-align: center; }
    .items-table td:nth-child(3) { text-align: center; }
    .items-table td:nth-child(4),
    .items-table td:nth-child(5) { text-align: right; }
    .totals-section { margin-top: 30px; padding-top: 20px; border-top: 2px solid #000; }
    .total-row { display: flex; justify-content: flex-end; margin-bottom: 8px; font-size: 18px; font-weight: bold; }
    .total-label { width: 200px; color: #2c3e50; }
    .total-value { width: 150px; text-align: right; color: #e74c3c; }
    .bank-details { margin-top: 35px; padding: 18px; background: #f8f9fa; border: 1px solid #ddd; border-radius: 6px; }
    .bank-details h4 { color: #2c3e50; margin-bottom: 12px; padding-bottom: 6px; border-bottom: 1px solid #ccc; }
    .bank-info-grid { display: grid; grid-template-columns: repeat(2, 1fr); gap: 12px; }
    .bank-info-item { display: flex; flex-direction: column; }
    .bank-label { font-weight: 600; color: #495057; margin-bottom: 2px; font-size: 13px; }
    .bank-value { color: #2c3e50; font-weight: bold; font-size: 14px; }
    .footer-note { margin-top: 35px; padding-top: 18px; border-top: 1px solid #ccc; color: #555; font-size: 13px; text-align: center; }
    .footer-note p { margin-bottom: 5px; }
    @media print {
      body { padding: 0; margin: 0; }
      .quotation-container { border: none; padding: 15px; }
      @page { margin: 0.5cm; }
    }
  </style>
</head>
<body>
  <div class="quotation-container">
    <div class="company-header">
      <div class="logo-container">
        <img src="{{.LogoPath}}" alt="Company Logo" class="logo" onerror="this.style.display='none'">
      </div>
      <div class="company-details">
        <h2>{{.Company.Name}}</h2>
        <p>{{.Company.Description}}</p>
        <p><span class="highlight">{{.Company.Phone}}</span></p>
        <p>{{.Company.Address}}</p>
        <p>GSTIN: {{.Company.GSTIN}}</p>
      </div>
    </div>

    <div class="quotation-title">QUOTATION</div>

    <div class="details-grid">
      <div class="bill-to">
        <h4>Bill To</h4>
        <div class="detail-row">
          <div class="detail-label">Customer:</div>
          <div class="detail-value">{{orNA .Doc.CustomerInfo.BillTo}}</div>
        </div>
        <div class="detail-row">
          <div class="detail-label">Contact No:</div>
          <div class="detail-value">{{orNA .Doc.CustomerInfo.ContactNo}}</div>
        </div>
        <div class="detail-row">
          <div class="detail-label">State:</div>
          <div class="detail-value">{{orNA .Doc.CustomerInfo.StateName}}</div>
        </div>
      </div>

      <div class="customer-details">
        <h4>Quotation Details</h4>
        <div class="detail-row">
          <div class="detail-label">Estimate No:</div>
          <div class="detail-value">{{.Doc.BusinessNumber}}</div>
        </div>
        <div class="detail-row">
          <div class="detail-label">Estimate Date:</div>
          <div class="detail-value">{{orNA .Doc.CustomerInfo.EstimateDate}}</div>
        </div>
        <div class="detail-row">
          <div class="detail-label">Branch:</div>
          <div class="detail-value">{{.Company.Branch}}</div>
        </div>
      </div>
    </div>

    <table class="items-table">
      <thead>
        <tr>
          <th>Si.No</th>
          <th>Description</th>
          <th>Qty</th>
          <th>Rate (&#8377;)</th>
          <th>Amount (&#8377;)</th>
        </tr>
      </thead>
      <tbody>
        {{range $i, $item := .Doc.Items}}
        <tr>
          <td>{{inc $i}}</td>
          <td>{{$item.Description}}</td>
          <td>{{$item.Qty}}</td>
          <td>{{money $item.Rate}}</td>
          <td>{{money $item.Amount}}</td>
        </tr>
        {{end}}
      </tbody>
    </table>

    <div class="totals-section">
      <div class="total-row">
        <div class="total-label">TOTAL AMOUNT:</div>
        <div class="total-value">&#8377;{{money .Doc.Totals.TotalAmount}}</div>
      </div>
    </div>

    <div class="bank-details">
      <h4>Bank Details</h4>
      <div class="bank-info-grid">
        <div class="bank-info-item">
          <span class="bank-label">Account Holder:</span>
          <span class="bank-value">{{.Bank.AccountHolder}}</span>
        </div>
        <div class="bank-info-item">
          <span class="bank-label">Account Number:</span>
          <span class="bank-value">{{.Bank.AccountNumber}}</span>
        </div>
        <div class="bank-info-item">
          <span class="bank-label">IFSC Code:</span>
          <span class="bank-value">{{.Bank.IFSC}}</span>
        </div>
        <div class="bank-info-item">
          <span class="bank-label">Branch:</span>
          <span class="bank-value">{{.Bank.Branch}}</span>
        </div>
        <div class="bank-info-item">
          <span class="bank-label">Account Type:</span>
          <span class="bank-value">{{.Bank.AccountType}}</span>
        </div>
        <div class="bank-info-item">
          <span class="bank-label">Bank Name:</span>
          <span class="bank-value">{{.Bank.BankName}}</span>
        </div>
      </div>
    </div>

    <div class="footer-note">
      <p>This is a computer generated quotation. Valid for 30 days from date of issue.</p>
      <p>For any queries, please contact: {{.Company.Phone}}</p>
    </div>
  </div>
</body>
</html>`
