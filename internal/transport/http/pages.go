package http

import (
	"html/template"
	"net/http"

	"github.com/labstack/echo/v4"
)

var resetPageTmpl = template.Must(template.New("reset").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8" />
<meta name="viewport" content="width=device-width, initial-scale=1.0" />
<title>FitCity Password Reset</title>
<style>
body { font-family: Arial, sans-serif; margin: 0; background: linear-gradient(135deg,#4a90e2,#9013fe); color: #fff; min-height: 100vh; display: flex; flex-direction: column; }
main { flex: 1; display: flex; justify-content: center; align-items: center; padding: 20px; }
.card { background: #fff; color: #333; padding: 24px; border-radius: 8px; width: 100%; max-width: 420px; box-shadow: 0 10px 40px rgba(0,0,0,0.2); }
input { width: 100%; padding: 10px; margin: 8px 0 2px; border: 1px solid #ccc; border-radius: 4px; box-sizing: border-box; }
button { width: 100%; margin-top: 16px; padding: 12px 24px; font-size: 16px; border: none; border-radius: 4px; cursor: pointer; background: #4a90e2; color: #fff; }
button:disabled { background: #9bbce4; cursor: default; }
.field-error { color: #c0392b; font-size: 13px; min-height: 16px; margin: 0 0 6px; }
.notice { margin-top: 14px; padding: 10px; border-radius: 4px; font-size: 14px; display: none; }
.notice.error { background: #fdecea; color: #c0392b; }
.notice.info { background: #eaf6ec; color: #1e7b34; }
.modal { display: none; position: fixed; top: 0; left: 0; width: 100%; height: 100%; background: rgba(0,0,0,0.5); justify-content: center; align-items: center; }
.modal-content { background: #fff; color: #333; padding: 24px; border-radius: 8px; width: 90%; max-width: 420px; box-shadow: 0 10px 40px rgba(0,0,0,0.2); text-align: center; }
footer { text-align: center; padding: 20px; font-size: 14px; opacity: 0.8; }
</style>
</head>
<body>
<main>
  <div class="card">
    <h2>Choose a new password</h2>
    <form id="reset-form" novalidate>
      <input type="password" id="password" placeholder="New password" autocomplete="new-password" />
      <p class="field-error" id="password-error"></p>
      <input type="password" id="confirm" placeholder="Confirm new password" autocomplete="new-password" />
      <p class="field-error" id="confirm-error"></p>
      <button type="submit" id="submit-btn">Reset password</button>
    </form>
    <div class="notice" id="notice"></div>
  </div>
</main>
<div id="success-modal" class="modal">
  <div class="modal-content">
    <h3>Password updated</h3>
    <p id="success-message"></p>
    <button type="button" id="success-ok">OK</button>
  </div>
</div>
<footer>FitCity account recovery</footer>
<script>
const token = {{.Token}};
const form = document.getElementById('reset-form');
const submitBtn = document.getElementById('submit-btn');
const notice = document.getElementById('notice');
let noticeTimer = null;
let inFlight = false;

function fieldError(id, message) {
  document.getElementById(id).textContent = message || '';
}

function validate(password, confirm) {
  fieldError('password-error', '');
  fieldError('confirm-error', '');
  if (!password) {
    fieldError('password-error', 'password is required');
    return false;
  }
  if (password.length < 8) {
    fieldError('password-error', 'password must be at least 8 characters');
    return false;
  }
  if (!confirm) {
    fieldError('confirm-error', 'password confirmation is required');
    return false;
  }
  if (password !== confirm) {
    fieldError('confirm-error', 'passwords do not match');
    return false;
  }
  return true;
}

function showTransient(kind, message) {
  clearTimeout(noticeTimer);
  notice.className = 'notice ' + kind;
  notice.textContent = message;
  notice.style.display = 'block';
  noticeTimer = setTimeout(function() { notice.style.display = 'none'; }, 5000);
}

function showSuccessDialog(message) {
  document.getElementById('success-message').textContent = message || 'Your password has been updated.';
  document.getElementById('success-modal').style.display = 'flex';
}

document.getElementById('success-ok').onclick = function() {
  document.getElementById('success-modal').style.display = 'none';
  showTransient('info', 'You may close this window now.');
};

form.onsubmit = async function(event) {
  event.preventDefault();
  if (inFlight) {
    return;
  }
  const password = document.getElementById('password').value;
  const confirm = document.getElementById('confirm').value;
  if (!validate(password, confirm)) {
    return;
  }

  inFlight = true;
  submitBtn.disabled = true;
  submitBtn.textContent = 'Resetting…';
  try {
    const response = await fetch('/api/v1/password-reset', {
      method: 'POST',
      headers: { 'Content-Type': 'application/json' },
      body: JSON.stringify({ token: token, password: password, password_confirmation: confirm })
    });
    const data = await response.json();
    if (response.ok && data.success) {
      showSuccessDialog(data.message);
    } else if (response.ok) {
      showTransient('error', data.message || 'Password reset failed.');
    } else {
      showTransient('error', data.error || data.message || 'Password reset failed.');
    }
  } catch (err) {
    showTransient('error', 'Password reset failed: ' + err.message);
  } finally {
    inFlight = false;
    submitBtn.disabled = false;
    submitBtn.textContent = 'Reset password';
  }
};
</script>
</body>
</html>`))

var invalidTokenTmpl = template.Must(template.New("invalid").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8" />
<meta name="viewport" content="width=device-width, initial-scale=1.0" />
<title>FitCity Password Reset</title>
<style>
body { font-family: Arial, sans-serif; margin: 0; background: linear-gradient(135deg,#4a90e2,#9013fe); min-height: 100vh; display: flex; justify-content: center; align-items: center; }
.modal-content { background: #fff; color: #333; padding: 24px; border-radius: 8px; width: 90%; max-width: 420px; box-shadow: 0 10px 40px rgba(0,0,0,0.2); text-align: center; }
button { margin-top: 16px; padding: 12px 24px; font-size: 16px; border: none; border-radius: 4px; cursor: pointer; background: #4a90e2; color: #fff; }
</style>
</head>
<body>
<div class="modal-content">
  <h3>Invalid reset link</h3>
  <p>This password reset link is missing or incomplete. Request a new one from the login page.</p>
  <button type="button" id="to-login">Go to login</button>
</div>
<script>
const loginURL = {{.LoginURL}};
document.getElementById('to-login').onclick = function() {
  history.replaceState(null, '', window.location.pathname);
  window.location.replace(loginURL);
};
</script>
</body>
</html>`))

type resetPageData struct {
	Token string
}

type invalidTokenData struct {
	LoginURL string
}

func renderResetPage(c echo.Context, token string) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(http.StatusOK)
	return resetPageTmpl.Execute(c.Response(), resetPageData{Token: token})
}

func renderInvalidTokenPage(c echo.Context, loginURL string) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(http.StatusOK)
	return invalidTokenTmpl.Execute(c.Response(), invalidTokenData{LoginURL: loginURL})
}
