package site

// layoutTemplate wraps every page. Pages define "title" and "content".
const layoutTemplate = `<!DOCTYPE html>
<html lang="en"{{if .LiveReload}} data-livereload{{end}}>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{template "title" .}}</title>
  <meta name="description" content="{{.Settings.Meta.Description}}">
  <meta name="keywords" content="{{.Settings.Meta.Keywords}}">
  {{if .Settings.Branding.Favicon}}<link rel="icon" href="{{.Settings.Branding.Favicon}}">{{end}}
  <link rel="stylesheet" href="/style.css?v={{.StyleVersion}}">
</head>
<body class="page-{{.Page}}" style="--primary: {{.Primary}}; --font-heading: {{.FontHeading}}; --font-body: {{.FontBody}}">
  <header class="site-header">
    <a class="logo" href="/">
      {{if .Settings.Branding.DesktopLogo}}<img class="logo-desktop" src="{{.Settings.Branding.DesktopLogo}}" alt="{{.Settings.Branding.CompanyName}}">{{end}}
      {{if .Settings.Branding.MobileLogo}}<img class="logo-mobile" src="{{.Settings.Branding.MobileLogo}}" alt="{{.Settings.Branding.CompanyName}}">{{end}}
      {{if not .Settings.Branding.DesktopLogo}}<span>{{.Settings.Branding.CompanyName}}</span>{{end}}
    </a>
    <button class="menu-toggle" id="menu-toggle" aria-label="Menu" aria-expanded="false">
      <span></span><span></span><span></span>
    </button>
    <nav class="site-nav" id="site-nav">
      {{range .Nav}}<a href="{{.Href}}"{{if .Current}} class="current" aria-current="page"{{end}}>{{.Label}}</a>
      {{end}}
    </nav>
  </header>
  <main>
{{template "content" .}}
  </main>
  <footer class="site-footer">
    <div class="footer-name">{{.Settings.Branding.CompanyFullName}}</div>
    <address>
      {{with .Settings.Contact.Address}}<div>{{.}}</div>{{end}}
      {{with .Settings.Contact.Phone}}<div>T {{.}}</div>{{end}}
      {{with .Settings.Contact.Fax}}<div>F {{.}}</div>{{end}}
      {{with .Settings.Contact.Email}}<div><a href="mailto:{{.}}">{{.}}</a></div>{{end}}
    </address>
    <div class="copyright">&copy; {{.Year}} {{.Settings.Branding.CompanyName}}</div>
  </footer>
  <script src="/script.js?v={{.ScriptVersion}}"></script>
</body>
</html>
`

const homeTemplate = `{{define "title"}}{{.Settings.Meta.Title}}{{end}}
{{define "content"}}{{with .Body}}
<section class="hero" id="hero">
  {{range $i, $s := .Page.Slides}}
  <figure class="slide{{if eq $i 0}} is-current{{end}}" data-slide="{{$i}}">
    <img src="{{$s.Image}}" alt="">
    {{if $s.Caption}}<figcaption style="color: {{$s.Color}}">{{$s.Caption}}</figcaption>{{end}}
  </figure>
  {{end}}
</section>

<section class="section-us">
  <h2>{{raw .Page.SectionUs.Title}}</h2>
  <div class="tabs" role="tablist">
    {{range $i, $t := .Page.SectionUs.Tabs}}<button role="tab" data-tab="{{$i}}"{{if eq $i 0}} aria-selected="true"{{end}}>{{$t.ButtonLabel}}</button>
    {{end}}
  </div>
  {{range $i, $t := .Page.SectionUs.Tabs}}
  <div class="tab-panel{{if eq $i 0}} is-current{{end}}" role="tabpanel" data-tab="{{$i}}">
    {{if $t.Motto}}<p class="motto">{{$t.Motto}}</p>{{end}}
    {{raw $t.Content}}
    {{if and (eq $t.Title "People") $.Body.Page.LeadershipImages}}
    <div class="leadership-strip">
      {{range $.Body.Page.LeadershipImages}}<img src="{{.}}" alt="">{{end}}
    </div>
    {{end}}
    {{if $t.Link}}<a class="more" href="{{$t.Link}}">{{$t.LinkText}}</a>{{end}}
  </div>
  {{end}}
</section>

<section class="section-work">
  <h2>Our Work</h2>
  <div class="work-grid">
    {{range $i, $w := .Page.Work}}
    <a class="work-item" data-index="{{ordinal $.Body.WorkRange $i}}" href="/projects/?category={{categorySlug $w.Category}}">
      <img src="{{$w.Image}}" alt="">
      <span class="work-title">{{$w.Title}}</span>
    </a>
    {{end}}
  </div>
</section>

<section class="contact-boxes">
  {{range $i, $b := .Page.ContactBoxes}}
  <a class="contact-box" data-index="{{ordinal $.Body.BoxRange $i}}" href="{{$b.Link}}">
    <span class="box-header">{{$b.Header}}</span>
    <span class="box-title">{{$b.Title}}</span>
    <span class="box-caption">{{$b.Caption}}</span>
  </a>
  {{end}}
</section>
{{end}}{{end}}
`

const aboutTemplate = `{{define "title"}}About | {{.Settings.Branding.CompanyName}}{{end}}
{{define "content"}}{{with .Body}}
<section class="company-image">
  {{if .CompanyImage}}<img src="{{.CompanyImage}}" alt="">{{end}}
</section>

<section class="story">
  <h1>{{.StoryTitle}}</h1>
  {{raw .Story}}
</section>

{{if .Stats}}
<section class="stats">
  {{range .Stats}}<div class="stat"><strong>{{.Stat}}</strong><span>{{.Desc}}</span></div>
  {{end}}
</section>
{{end}}

{{if .Leadership}}
<section class="leadership">
  <h2>Leadership</h2>
  {{range .Leadership}}
  <article class="leader">
    {{if .Image}}<img src="{{.Image}}" alt="{{.Name}}">{{end}}
    <h3>{{.Name}}</h3>
    <p class="position">{{.Position}}</p>
    <div class="bio">{{raw .Bio}}</div>
  </article>
  {{end}}
</section>
{{end}}

{{if .ValueSlides}}
<section class="values">
  {{range .ValueSlides}}<div class="value"><h3>{{.Title}}</h3><p>{{.Caption}}</p></div>
  {{end}}
</section>
{{end}}
{{end}}{{end}}
`

const servicesTemplate = `{{define "title"}}Services | {{.Settings.Branding.CompanyName}}{{end}}
{{define "content"}}{{with .Body}}
<section class="services-hero">
  {{if .HeroImage}}<img src="{{.HeroImage}}" alt="">{{end}}
  <h1>{{.Title}}</h1>
  {{if .Subtitle}}<p class="subtitle">{{.Subtitle}}</p>{{end}}
</section>
<section class="services">
  {{range .Services}}
  <div class="service">
    <h2>{{.Name}}</h2>
    <ul>{{range .Items}}<li>{{.}}</li>{{end}}</ul>
  </div>
  {{end}}
</section>
{{end}}{{end}}
`

const projectsTemplate = `{{define "title"}}Projects | {{.Settings.Branding.CompanyName}}{{end}}
{{define "content"}}{{with .Body}}
<section class="projects">
  <h1>Projects</h1>
  <div class="category-filter" id="category-filter">
    <a href="/projects/" data-category="" class="is-current">All</a>
    {{range .Categories}}<a href="/projects/?category={{.Slug}}" data-category="{{.Slug}}">{{.Name}}</a>
    {{end}}
  </div>
  <div class="project-grid">
    {{range $i, $p := .Projects}}
    <a class="project-tile" data-index="{{ordinal $.Body.Range $i}}" data-category="{{categorySlug $p.Category}}" href="/projects/{{$p.Slug}}/">
      {{if $p.Hero}}<img src="{{$p.Hero}}" alt="{{$p.Title}}" loading="lazy">{{end}}
      <span class="project-title">{{$p.Title}}</span>
      <span class="project-category">{{$p.Category}}</span>
    </a>
    {{end}}
  </div>
</section>
{{end}}{{end}}
`

const projectTemplate = `{{define "title"}}{{.Body.Project.Title}} | {{.Settings.Branding.CompanyName}}{{end}}
{{define "content"}}{{with .Body}}
<article class="project">
  {{with .Project.Hero}}<img class="project-hero" src="{{.}}" alt="">{{end}}
  <header>
    <p class="project-category"><a href="/projects/?category={{categorySlug .Project.Category}}">{{.Project.Category}}</a></p>
    <h1>{{.Project.Title}}</h1>
    {{with .Project.Location}}<p class="location">{{.}}</p>{{end}}
  </header>
  <dl class="project-facts">
    {{with .Project.Year}}<dt>Year</dt><dd>{{.}}</dd>{{end}}
    {{with .Project.Size}}<dt>Size</dt><dd>{{.}}</dd>{{end}}
    {{with .Project.Status}}<dt>Status</dt><dd>{{.}}</dd>{{end}}
    {{with .Project.DesignLead}}<dt>Design Lead</dt><dd>{{.}}</dd>{{end}}
    {{with .Project.Type}}<dt>Type</dt><dd>{{.}}</dd>{{end}}
  </dl>
  <div class="description">{{raw .Project.Description}}</div>
  {{if .Project.Images}}
  <div class="gallery">
    {{range .Project.Images}}<img src="{{.}}" alt="" loading="lazy">{{end}}
  </div>
  {{end}}
  {{if .Related}}
  <aside class="related">
    <h2>More {{.Project.Category}} Projects</h2>
    {{range .Related}}<a href="/projects/{{.Slug}}/">{{.Title}}</a>
    {{end}}
  </aside>
  {{end}}
</article>
{{end}}{{end}}
`

const contactTemplate = `{{define "title"}}Contact | {{.Settings.Branding.CompanyName}}{{end}}
{{define "content"}}{{with .Body}}
<section class="contact">
  {{with .Page.Image}}<img class="contact-image" src="{{.}}" alt="">{{end}}
  <h1>{{if .Page.Title}}{{.Page.Title}}{{else}}Contact Us{{end}}</h1>
  {{with .Page.Intro}}<p class="intro">{{.}}</p>{{end}}
  <form class="contact-form" id="contact-form" method="post" action="{{.Endpoint}}">
    <p class="hp" aria-hidden="true">
      <label>Leave this empty <input type="text" name="website" tabindex="-1" autocomplete="off"></label>
    </p>
    <label>Name <input type="text" name="name" required></label>
    <label>Email <input type="email" name="email" required></label>
    <label>Message <textarea name="message" rows="6" minlength="{{.MinLength}}" maxlength="{{.MaxLength}}" required></textarea></label>
    <button type="submit">Send</button>
    <p class="form-status" id="form-status" role="status"></p>
  </form>
</section>
{{end}}{{end}}
`

const notFoundTemplate = `{{define "title"}}Not Found | {{.Settings.Branding.CompanyName}}{{end}}
{{define "content"}}
<section class="not-found">
  <h1>Page not found</h1>
  <p>{{.Body.Message}}</p>
  <p><a href="/projects/">Browse our projects</a> or <a href="/">return home</a>.</p>
</section>
{{end}}
`
