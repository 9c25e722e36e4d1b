package mail

import "html/template"

type otpTemplateData struct {
	Name string
	Code string
}

type welcomeTemplateData struct {
	Name         string
	DashboardURL string
}

var otpTemplate = template.Must(template.New("otp").Parse(`<!DOCTYPE html>
<html>
<head>
  <style>
    body { font-family: Arial, sans-serif; margin: 0; padding: 20px; background-color: #f4f4f4; }
    .container { max-width: 600px; margin: 0 auto; background-color: white; border-radius: 10px; overflow: hidden; }
    .header { background: #667eea; color: white; padding: 30px; text-align: center; }
    .content { padding: 30px; }
    .otp-box { background: #f8f9fa; border: 2px dashed #667eea; border-radius: 10px; padding: 20px; text-align: center; margin: 20px 0; }
    .otp-code { font-size: 32px; font-weight: bold; color: #667eea; letter-spacing: 5px; margin: 10px 0; }
    .footer { background: #f8f9fa; padding: 20px; text-align: center; color: #666; font-size: 14px; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>College Resource Hub</h1>
      <p>Account Verification</p>
    </div>
    <div class="content">
      <h2>Hello {{.Name}}!</h2>
      <p>Thank you for registering with College Resource Hub. To complete your account verification, please use the code below:</p>
      <div class="otp-box">
        <p>Your verification code is:</p>
        <div class="otp-code">{{.Code}}</div>
        <p><strong>This code expires in 10 minutes</strong></p>
      </div>
      <p>Please enter this code on the verification page to activate your account.</p>
      <p>If you didn't request this verification, please ignore this email.</p>
    </div>
    <div class="footer">
      <p>This is an automated email, please do not reply.</p>
    </div>
  </div>
</body>
</html>`))

var welcomeTemplate = template.Must(template.New("welcome").Parse(`<!DOCTYPE html>
<html>
<head>
  <style>
    body { font-family: Arial, sans-serif; margin: 0; padding: 20px; background-color: #f4f4f4; }
    .container { max-width: 600px; margin: 0 auto; background-color: white; border-radius: 10px; overflow: hidden; }
    .header { background: #10b981; color: white; padding: 30px; text-align: center; }
    .content { padding: 30px; }
    .btn { display: inline-block; padding: 12px 30px; background: #10b981; color: white; text-decoration: none; border-radius: 5px; margin: 10px 0; }
    .footer { background: #f8f9fa; padding: 20px; text-align: center; color: #666; font-size: 14px; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>Welcome to College Resource Hub!</h1>
      <p>Your account has been successfully verified</p>
    </div>
    <div class="content">
      <h2>Hello {{.Name}}!</h2>
      <p>Congratulations! Your account has been verified and you're now part of the College Resource Hub community.</p>
      <p>You can browse and download study materials, upload your own, bookmark favorites and keep track of academic events.</p>
      <div style="text-align: center; margin: 30px 0;">
        <a href="{{.DashboardURL}}" class="btn">Get Started</a>
      </div>
    </div>
    <div class="footer">
      <p>Happy learning!</p>
    </div>
  </div>
</body>
</html>`))
