package generator

// docTemplate is the Go html/template for the generated portfolio
// document. The document is fully self-contained: the stylesheet is
// embedded and every image is either a remote URL the user supplied or
// an inline data URI. Sections render only when backed by data; the
// header block is always emitted.
const docTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Snap.FullName}} — Portfolio</title>
  <style>
    :root {
      --primary: {{.Palette.Primary}};
      --secondary: {{.Palette.Secondary}};
      --bg: {{.Palette.Background}};
      --card-bg: {{.Palette.CardBackground}};
      --text: {{.Palette.Text}};
    }
    * { margin: 0; padding: 0; box-sizing: border-box; }
    body {
      font-family: 'Segoe UI', system-ui, -apple-system, sans-serif;
      background: var(--bg);
      color: var(--text);
      line-height: 1.6;
    }
    .container { max-width: 1000px; margin: 0 auto; padding: 0 20px; }
    .hero {
      padding: 80px 0 60px;
      text-align: center;
      background: linear-gradient(135deg, var(--secondary), var(--bg));
    }
    .avatar {
      width: 140px; height: 140px;
      border-radius: 50%;
      object-fit: cover;
      border: 4px solid var(--primary);
      margin-bottom: 24px;
    }
    .avatar-fallback {
      width: 140px; height: 140px;
      border-radius: 50%;
      background: var(--primary);
      color: var(--bg);
      font-size: 48px; font-weight: 700;
      display: inline-flex; align-items: center; justify-content: center;
      margin-bottom: 24px;
    }
    .hero h1 { font-size: 2.6rem; margin-bottom: 8px; }
    .hero .headline { font-size: 1.3rem; color: var(--primary); margin-bottom: 8px; }
    .hero .meta { opacity: 0.8; margin-bottom: 20px; }
    .bio { max-width: 640px; margin: 0 auto; opacity: 0.9; text-align: left; }
    .bio p { margin-bottom: 12px; }
    section { padding: 48px 0; }
    section h2 {
      font-size: 1.8rem;
      margin-bottom: 28px;
      border-left: 5px solid var(--primary);
      padding-left: 14px;
    }
    .chips { display: flex; flex-wrap: wrap; gap: 10px; }
    .chip {
      background: var(--card-bg);
      border: 1px solid var(--primary);
      border-radius: 999px;
      padding: 6px 16px;
      font-size: 0.95rem;
    }
    .cards { display: grid; grid-template-columns: repeat(auto-fill, minmax(280px, 1fr)); gap: 20px; }
    .card {
      background: var(--card-bg);
      border-radius: 12px;
      padding: 22px;
      display: flex; flex-direction: column; gap: 10px;
    }
    .card img { width: 100%; border-radius: 8px; object-fit: cover; max-height: 170px; }
    .card h3 { color: var(--primary); }
    .card .links { margin-top: auto; display: flex; gap: 14px; }
    .card .links a { color: var(--primary); text-decoration: none; font-weight: 600; }
    .timeline { display: flex; flex-direction: column; gap: 18px; }
    .timeline-entry {
      background: var(--card-bg);
      border-left: 4px solid var(--primary);
      border-radius: 0 10px 10px 0;
      padding: 18px 20px;
    }
    .timeline-entry .company { color: var(--primary); font-weight: 600; }
    .cert-grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(220px, 1fr)); gap: 18px; }
    .cert {
      background: var(--card-bg);
      border-radius: 10px;
      padding: 18px;
      text-align: center;
    }
    .cert img { max-width: 100%; max-height: 130px; border-radius: 6px; margin-bottom: 10px; }
    .cert-icon { font-size: 44px; margin-bottom: 10px; }
    .cert .issuer { opacity: 0.75; font-size: 0.9rem; }
    .education-block {
      background: var(--card-bg);
      border-radius: 10px;
      padding: 22px;
      white-space: pre-line;
    }
    .contact-list { list-style: none; display: flex; flex-direction: column; gap: 10px; }
    .contact-list a { color: var(--primary); text-decoration: none; }
    .contact-list .label { display: inline-block; min-width: 100px; opacity: 0.75; }
    footer { padding: 30px 0; text-align: center; opacity: 0.6; font-size: 0.9rem; }
  </style>
</head>
<body>
  <header class="hero">
    <div class="container">
      {{if .Snap.ImageURL}}<img class="avatar" src="{{.Snap.ImageURL}}" alt="{{.Snap.FullName}}">{{else}}<div class="avatar-fallback">{{.Initials}}</div>{{end}}
      <h1>{{.Snap.FullName}}</h1>
      <p class="headline">{{.Snap.Title}}</p>
      {{if .ExperienceLine}}<p class="meta">{{.ExperienceLine}}</p>{{end}}
      {{if .BioHTML}}<div class="bio">{{.BioHTML}}</div>{{end}}
    </div>
  </header>

  {{if .Snap.Skills}}
  <section id="skills">
    <div class="container">
      <h2>Skills</h2>
      <div class="chips">
        {{range .Snap.Skills}}<span class="chip">{{.}}</span>
        {{end}}
      </div>
    </div>
  </section>
  {{end}}

  {{if .Snap.Projects}}
  <section id="projects">
    <div class="container">
      <h2>Projects</h2>
      <div class="cards">
        {{range .Snap.Projects}}
        <div class="card">
          {{if .ImageURL}}<img src="{{.ImageURL}}" alt="{{.Name}}">{{end}}
          <h3>{{.Name}}</h3>
          <p>{{.Description}}</p>
          {{if or .LiveLink .GithubLink}}
          <div class="links">
            {{if .LiveLink}}<a href="{{.LiveLink}}">Live Demo</a>{{end}}
            {{if .GithubLink}}<a href="{{.GithubLink}}">Source</a>{{end}}
          </div>
          {{end}}
        </div>
        {{end}}
      </div>
    </div>
  </section>
  {{end}}

  {{if .Snap.WorkExperience}}
  <section id="experience">
    <div class="container">
      <h2>Work Experience</h2>
      <div class="timeline">
        {{range .Snap.WorkExperience}}
        <div class="timeline-entry">
          <h3>{{.Title}}</h3>
          <p class="company">{{.Company}}</p>
          {{if .Description}}<p>{{.Description}}</p>{{end}}
        </div>
        {{end}}
      </div>
    </div>
  </section>
  {{end}}

  {{if .Certs}}
  <section id="certifications">
    <div class="container">
      <h2>Certifications</h2>
      <div class="cert-grid">
        {{range .Certs}}
        <div class="cert">
          {{if .Image}}<img src="{{.Image}}" alt="{{.Name}}">{{else}}<div class="cert-icon">&#127891;</div>{{end}}
          <h3>{{.Name}}</h3>
          <p class="issuer">{{.Issuer}}</p>
        </div>
        {{end}}
      </div>
    </div>
  </section>
  {{end}}

  {{if .Snap.Education}}
  <section id="education">
    <div class="container">
      <h2>Education</h2>
      <div class="education-block">{{.Snap.Education}}</div>
    </div>
  </section>
  {{end}}

  <section id="contact">
    <div class="container">
      <h2>Contact</h2>
      <ul class="contact-list">
        {{range .Contacts}}
        <li><span class="label">{{.Label}}</span>{{if .Href}}<a href="{{.Href}}">{{.Text}}</a>{{else}}<span>{{.Text}}</span>{{end}}</li>
        {{end}}
      </ul>
    </div>
  </section>

  <footer>
    <div class="container">{{.Snap.FullName}} &middot; {{.Snap.Title}}</div>
  </footer>
</body>
</html>
`
